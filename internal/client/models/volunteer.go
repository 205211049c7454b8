package models

import "time"

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type Volunteer struct {
	ID               string           `json:"id,omitempty"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone,omitempty"`
	Status           string           `json:"status,omitempty"`
	City             string           `json:"city,omitempty"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Interests        []string         `json:"interests,omitempty"`
	PreferredTasks   []string         `json:"preferred_tasks,omitempty"`
	ApplicationDate  *time.Time       `json:"application_date,omitempty"`
	TotalHours       float64          `json:"total_hours,omitempty"`
}

func (v *Volunteer) FullName() string {
	u := User{FirstName: v.FirstName, LastName: v.LastName}
	return u.FullName()
}

type Training struct {
	Name          string     `json:"name"`
	CompletedDate time.Time  `json:"completed_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	Trainer       string     `json:"trainer,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type HoursLog struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Task  string    `json:"task,omitempty"`
	Notes string    `json:"notes,omitempty"`
}

type VolunteerStatistics struct {
	TotalHours      float64    `json:"total_hours"`
	ShiftsCompleted int        `json:"shifts_completed"`
	HoursThisMonth  float64    `json:"hours_this_month"`
	LastActivity    *time.Time `json:"last_activity,omitempty"`
}
