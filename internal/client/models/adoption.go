package models

import "time"

type AdoptionStatus string

const (
	AdoptionPending     AdoptionStatus = "pending"
	AdoptionUnderReview AdoptionStatus = "under_review"
	AdoptionApproved    AdoptionStatus = "approved"
	AdoptionRejected    AdoptionStatus = "rejected"
	AdoptionWithdrawn   AdoptionStatus = "withdrawn"
	AdoptionCompleted   AdoptionStatus = "completed"
)

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Adoption is an adoption application and, once completed, the adoption
// it turned into.
type Adoption struct {
	ID                 string         `json:"id,omitempty"`
	AnimalID           string         `json:"animal_id"`
	UserID             string         `json:"user_id,omitempty"`
	ApplicantFirstName string         `json:"applicant_first_name"`
	ApplicantLastName  string         `json:"applicant_last_name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone,omitempty"`
	Address            Address        `json:"address"`
	HouseholdType      string         `json:"household_type,omitempty"`
	HasYard            bool           `json:"has_yard,omitempty"`
	ExperienceWithPets string         `json:"experience_with_pets,omitempty"`
	ReasonForAdoption  string         `json:"reason_for_adoption,omitempty"`
	Status             AdoptionStatus `json:"status,omitempty"`
	ApplicationDate    *time.Time     `json:"application_date,omitempty"`
	ReviewedBy         string         `json:"reviewed_by,omitempty"`
	ReviewNotes        string         `json:"review_notes,omitempty"`
	RejectionReason    string         `json:"rejection_reason,omitempty"`
	InterviewDate      *time.Time     `json:"interview_date,omitempty"`
	AdoptionDate       *time.Time     `json:"adoption_date,omitempty"`
	AdoptionFee        float64        `json:"adoption_fee,omitempty"`
	ContractURL        string         `json:"contract_url,omitempty"`
	CreatedAt          *time.Time     `json:"created_at,omitempty"`
	UpdatedAt          *time.Time     `json:"updated_at,omitempty"`
}

type Interview struct {
	Date        time.Time `json:"interview_date"`
	Interviewer string    `json:"interviewer,omitempty"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type CompleteAdoption struct {
	AdoptionDate  time.Time `json:"adoption_date"`
	AdoptionFee   float64   `json:"adoption_fee"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type FollowUp struct {
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	Condition string    `json:"condition,omitempty"`
}
