package models

import (
	"fmt"
	"time"
)

type AnimalStatus string

const (
	AnimalAvailable      AnimalStatus = "available"
	AnimalAdopted        AnimalStatus = "adopted"
	AnimalUnderTreatment AnimalStatus = "under_treatment"
	AnimalFostered       AnimalStatus = "fostered"
	AnimalTransferred    AnimalStatus = "transferred"
	AnimalDeceased       AnimalStatus = "deceased"
)

type Animal struct {
	ID             string       `json:"id,omitempty"`
	Name           string       `json:"name"`
	Species        string       `json:"species"`
	Breed          string       `json:"breed,omitempty"`
	Category       string       `json:"category,omitempty"`
	Sex            string       `json:"sex,omitempty"`
	DateOfBirth    *time.Time   `json:"date_of_birth,omitempty"`
	AgeYears       int          `json:"age_years,omitempty"`
	AgeMonths      int          `json:"age_months,omitempty"`
	Color          string       `json:"color,omitempty"`
	Size           string       `json:"size,omitempty"`
	Weight         float64      `json:"weight,omitempty"`
	MicrochipID    string       `json:"microchip_id,omitempty"`
	Status         AnimalStatus `json:"status,omitempty"`
	IntakeDate     *time.Time   `json:"intake_date,omitempty"`
	IntakeReason   string       `json:"intake_reason,omitempty"`
	Description    string       `json:"description,omitempty"`
	Temperament    []string     `json:"temperament,omitempty"`
	GoodWithKids   bool         `json:"good_with_kids,omitempty"`
	GoodWithDogs   bool         `json:"good_with_dogs,omitempty"`
	GoodWithCats   bool         `json:"good_with_cats,omitempty"`
	SpayedNeutered bool         `json:"spayed_neutered,omitempty"`
	Vaccinated     bool         `json:"vaccinated,omitempty"`
	SpecialNeeds   string       `json:"special_needs,omitempty"`
	AdoptionFee    float64      `json:"adoption_fee,omitempty"`
	PhotoURL       string       `json:"photo_url,omitempty"`
	Photos         []string     `json:"photos,omitempty"`
	CreatedAt      *time.Time   `json:"created_at,omitempty"`
	UpdatedAt      *time.Time   `json:"updated_at,omitempty"`
}

// Age renders the age as "2y 3m", "5m" or "" when unknown.
func (a *Animal) Age() string {
	switch {
	case a.AgeYears > 0 && a.AgeMonths > 0:
		return fmt.Sprintf("%dy %dm", a.AgeYears, a.AgeMonths)
	case a.AgeYears > 0:
		return fmt.Sprintf("%dy", a.AgeYears)
	case a.AgeMonths > 0:
		return fmt.Sprintf("%dm", a.AgeMonths)
	}
	return ""
}

type MedicalRecord struct {
	Date         time.Time `json:"date"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Cost         float64   `json:"cost,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type AddPhotoRequest struct {
	PhotoURL string `json:"photo_url"`
}
