package models

// Veterinarian and Clinic are entries of the veterinary directory.
type Veterinarian struct {
	Name   string `json:"name"`
	Clinic string `json:"clinic,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
}

type Clinic struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
	Phone   string  `json:"phone,omitempty"`
}
