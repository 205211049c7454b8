// Package models defines the shelter entities exchanged with the backend.
package models

// Page is one page of a list endpoint.
type Page[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// HasMore reports whether items exist past this page.
func (p *Page[T]) HasMore() bool {
	return p.Offset+len(p.Data) < p.Total
}

// StatusUpdate is the body of the /{resource}/{id}/status endpoints.
type StatusUpdate struct {
	Status string `json:"status"`
}
