package models

import "time"

// LocalizedText carries the English and Polish variants of a text.
type LocalizedText struct {
	English string `json:"en"`
	Polish  string `json:"pl,omitempty"`
}

type Campaign struct {
	ID            string        `json:"id,omitempty"`
	Name          LocalizedText `json:"name"`
	Description   LocalizedText `json:"description"`
	Type          string        `json:"type"`
	Status        string        `json:"status,omitempty"`
	GoalAmount    float64       `json:"goal_amount"`
	CurrentAmount float64       `json:"current_amount,omitempty"`
	DonorCount    int           `json:"donor_count,omitempty"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Public        bool          `json:"public"`
	Featured      bool          `json:"featured"`
}

// Progress is the share of the goal raised so far, in percent.
func (c *Campaign) Progress() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	return c.CurrentAmount / c.GoalAmount * 100
}

type Milestone struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Amount      float64    `json:"amount"`
	ReachedAt   *time.Time `json:"reached_at,omitempty"`
	Description string     `json:"description,omitempty"`
}

type CampaignProgress struct {
	GoalAmount    float64 `json:"goal_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Percentage    float64 `json:"percentage"`
	DonationCount int     `json:"donation_count"`
}
