package models

import "time"

// Schedule is a staff or volunteer shift.
type Schedule struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	VolunteerID string    `json:"volunteer_id,omitempty"`
	ShiftDate   time.Time `json:"shift_date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Role        string    `json:"role,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

func (s *Schedule) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

type SwapRequest struct {
	ID             string `json:"id,omitempty"`
	RequestedBy    string `json:"requested_by,omitempty"`
	ReplacementID  string `json:"replacement_id,omitempty"`
	TargetSchedule string `json:"target_schedule_id,omitempty"`
	Reason         string `json:"reason,omitempty"`
	Status         string `json:"status,omitempty"`
}

// Availability is the answer of the availability check.
type Availability struct {
	Available bool       `json:"available"`
	Conflicts []Schedule `json:"conflicts,omitempty"`
}
