package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// Pet listing statuses.
const (
	PetStatusAdoptable = "adoptable"
	PetStatusLost      = "lost"
	PetStatusFound     = "found"
	PetStatusAdopted   = "adopted"
)

// ScopePhoto marks uploads of pet photos.
const ScopePhoto = "photo"

// Pet defines an animal listing: an adoptable animal put up by a shelter or
// individual, or a lost/found report.
type Pet struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	AgeMonths   int32     `json:"age_months,omitempty"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Version     int32     `json:"-"`
}

func ValidatePet(v *validator.Validator, pet *Pet) {
	v.Check(pet.Name != "", "name", "must be provided")
	v.Check(len(pet.Name) <= 100, "name", "must not be more than 100 bytes long")
	v.Check(pet.Species != "", "species", "must be provided")
	v.Check(pet.Description != "", "description", "must be provided")
	v.Check(len(pet.Description) <= 5000, "description", "must not be more than 5000 bytes long")
	v.Check(pet.AgeMonths >= 0, "age_months", "must not be negative")
	v.Check(pet.AgeMonths <= 600, "age_months", "must not be more than 600")
	v.Check(validator.In(pet.Status, PetStatusAdoptable, PetStatusLost, PetStatusFound, PetStatusAdopted), "status", "must be one of adoptable, lost, found or adopted")
}
