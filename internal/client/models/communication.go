package models

import "time"

type Communication struct {
	ID             string     `json:"id,omitempty"`
	TemplateID     string     `json:"template_id,omitempty"`
	Type           string     `json:"type"`
	Category       string     `json:"category,omitempty"`
	Status         string     `json:"status,omitempty"`
	RecipientType  string     `json:"recipient_type"`
	RecipientID    string     `json:"recipient_id,omitempty"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	RecipientPhone string     `json:"recipient_phone,omitempty"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Body           string     `json:"body"`
	ScheduledFor   *time.Time `json:"scheduled_for,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
}

type CommunicationTemplate struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Subject     string   `json:"subject,omitempty"`
	Body        string   `json:"body"`
	Variables   []string `json:"variables,omitempty"`
	Active      bool     `json:"active"`
	Language    string   `json:"language,omitempty"`
}

// Recipient is an addressee offered by the recipients lookup.
type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Type  string `json:"type,omitempty"`
}
