package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// Adoption application statuses.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Application defines an adoption application submitted for an adoptable pet.
// One application per user per pet.
type Application struct {
	ID          int64     `json:"id"`
	PetID       int64     `json:"pet_id"`
	UserID      int64     `json:"user_id"`
	Message     string    `json:"message"`
	HomeDetails string    `json:"home_details,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Version     int32     `json:"-"`
}

func ValidateApplication(v *validator.Validator, application *Application) {
	v.Check(application.Message != "", "message", "must be provided")
	v.Check(len(application.Message) <= 5000, "message", "must not be more than 5000 bytes long")
	v.Check(len(application.HomeDetails) <= 5000, "home_details", "must not be more than 5000 bytes long")
}

func ValidateApplicationStatus(v *validator.Validator, status string) {
	v.Check(validator.In(status, ApplicationStatusApproved, ApplicationStatusRejected), "status", "must be either approved or rejected")
}
