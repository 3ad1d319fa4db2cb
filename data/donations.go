package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// Donation statuses. A donation is stored pending when the payment intent is
// created with the provider and finalized when the payment is confirmed.
const (
	DonationStatusPending   = "pending"
	DonationStatusSucceeded = "succeeded"
	DonationStatusFailed    = "failed"
)

// Donation amount bounds in cents: $1.00 to $50,000.00.
const (
	MinDonationCents = 100
	MaxDonationCents = 5_000_000
)

// Donation defines one donation to a campaign. IntentID references the
// payment provider's intent for the charge.
type Donation struct {
	ID          int64     `json:"id"`
	CampaignID  int64     `json:"campaign_id"`
	UserID      int64     `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	IntentID    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	Version     int32     `json:"-"`
}

func ValidateDonation(v *validator.Validator, donation *Donation) {
	v.Check(donation.AmountCents >= MinDonationCents, "amount_cents", "must be at least 100")
	v.Check(donation.AmountCents <= MaxDonationCents, "amount_cents", "must not be more than 5000000")
}
