package models

import "time"

type Document struct {
	ID              string     `json:"id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Type            string     `json:"type"`
	Category        string     `json:"category,omitempty"`
	FileName        string     `json:"file_name,omitempty"`
	FileSize        int64      `json:"file_size,omitempty"`
	MimeType        string     `json:"mime_type,omitempty"`
	FileURL         string     `json:"file_url,omitempty"`
	RelatedEntity   string     `json:"related_entity,omitempty"`
	RelatedEntityID string     `json:"related_entity_id,omitempty"`
	IsPublic        bool       `json:"is_public"`
	IsConfidential  bool       `json:"is_confidential"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	UploadedBy      string     `json:"uploaded_by,omitempty"`
	UploadedAt      time.Time  `json:"uploaded_at,omitzero"`
}
