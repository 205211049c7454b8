package models

import "time"

type VeterinaryVisit struct {
	ID                string     `json:"id,omitempty"`
	AnimalID          string     `json:"animal_id"`
	VisitDate         time.Time  `json:"visit_date"`
	VisitType         string     `json:"visit_type"`
	VeterinarianName  string     `json:"veterinarian_name"`
	ClinicName        string     `json:"clinic_name,omitempty"`
	Reason            string     `json:"reason"`
	Diagnosis         string     `json:"diagnosis,omitempty"`
	TreatmentProvided string     `json:"treatment_provided,omitempty"`
	FollowUpRequired  bool       `json:"follow_up_required"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
	Weight            float64    `json:"weight,omitempty"`
	Cost              float64    `json:"cost,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

type Vaccination struct {
	ID               string     `json:"id,omitempty"`
	AnimalID         string     `json:"animal_id,omitempty"`
	VaccineName      string     `json:"vaccine_name"`
	VaccineType      string     `json:"vaccine_type"`
	BatchNumber      string     `json:"batch_number,omitempty"`
	VaccinationDate  time.Time  `json:"vaccination_date"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
	VeterinarianName string     `json:"veterinarian_name"`
}

type Medication struct {
	ID        string     `json:"id,omitempty"`
	AnimalID  string     `json:"animal_id,omitempty"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}
