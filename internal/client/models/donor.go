package models

import "time"

type DonorContact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Donor struct {
	ID               string       `json:"id,omitempty"`
	Type             string       `json:"type"`
	Status           string       `json:"status,omitempty"`
	FirstName        string       `json:"first_name,omitempty"`
	LastName         string       `json:"last_name,omitempty"`
	OrganizationName string       `json:"organization_name,omitempty"`
	Contact          DonorContact `json:"contact"`
	Address          Address      `json:"address"`
	TotalDonated     float64      `json:"total_donated,omitempty"`
	DonationCount    int          `json:"donation_count,omitempty"`
	LastDonationDate *time.Time   `json:"last_donation_date,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
}

// DisplayName is the organization name for organizations and the person's
// name otherwise.
func (d *Donor) DisplayName() string {
	if d.OrganizationName != "" {
		return d.OrganizationName
	}
	u := User{FirstName: d.FirstName, LastName: d.LastName}
	return u.FullName()
}

type Donation struct {
	ID           string    `json:"id,omitempty"`
	DonorID      string    `json:"donor_id,omitempty"`
	Type         string    `json:"type"`
	Status       string    `json:"status,omitempty"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency,omitempty"`
	DonationDate time.Time `json:"donation_date"`
	CampaignID   string    `json:"campaign_id,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	Anonymous    bool      `json:"anonymous,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type DonorStatistics struct {
	TotalDonated      float64    `json:"total_donated"`
	DonationCount     int        `json:"donation_count"`
	AverageDonation   float64    `json:"average_donation"`
	LargestDonation   float64    `json:"largest_donation"`
	FirstDonationDate *time.Time `json:"first_donation_date,omitempty"`
	LastDonationDate  *time.Time `json:"last_donation_date,omitempty"`
}
