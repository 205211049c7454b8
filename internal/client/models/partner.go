package models

import "time"

type Partner struct {
	ID               string     `json:"id,omitempty"`
	Name             string     `json:"name"`
	LegalName        string     `json:"legal_name,omitempty"`
	Type             string     `json:"type"`
	Status           string     `json:"status,omitempty"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Address          Address    `json:"address"`
	PartnerSince     time.Time  `json:"partner_since,omitzero"`
	AgreementExpiry  *time.Time `json:"agreement_expiry,omitempty"`
	ServicesProvided []string   `json:"services_provided,omitempty"`
	AcceptsIntakes   bool       `json:"accepts_intakes"`
	Website          string     `json:"website,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

type Agreement struct {
	ID        string     `json:"id,omitempty"`
	Number    string     `json:"number"`
	Type      string     `json:"type,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Terms     string     `json:"terms,omitempty"`
	Status    string     `json:"status,omitempty"`
}
