package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// Campaign defines a crowdfunding campaign, typically for medical care or
// shelter costs. Amounts are integer cents.
type Campaign struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GoalCents    int64     `json:"goal_cents"`
	RaisedCents  int64     `json:"raised_cents"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}

func ValidateCampaign(v *validator.Validator, campaign *Campaign) {
	v.Check(campaign.Title != "", "title", "must be provided")
	v.Check(len(campaign.Title) <= 300, "title", "must not be more than 300 bytes long")
	v.Check(campaign.Description != "", "description", "must be provided")
	v.Check(len(campaign.Description) <= 10_000, "description", "must not be more than 10000 bytes long")
	v.Check(campaign.GoalCents >= 1000, "goal_cents", "must be at least 1000")
	v.Check(campaign.GoalCents <= 100_000_000, "goal_cents", "must not be more than 100000000")
}
