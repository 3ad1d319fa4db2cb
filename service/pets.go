package service

import (
	"errors"
	"mime/multipart"

	"github.com/okezie/pawhaven/clients"
	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/repository"
)

type pets interface {
	CreatePet(userID int64, body *dto.CreatePetRequestBody) (*data.Pet, error)
	ShowPet(petID int64) (*data.Pet, error)
	UpdatePet(petID int64, body *dto.UpdatePetRequestBody) (*data.Pet, error)
	DeletePet(petID int64) error
	ListPets(search string, species string, status string, filters data.Filters) ([]*data.Pet, data.Metadata, error)
	UploadPetPhoto(petID int64, file multipart.File, fileHeader *multipart.FileHeader) (*data.Pet, error)
}

// CreatePet service creates a new pet listing.
func (s *service) CreatePet(userID int64, body *dto.CreatePetRequestBody) (*data.Pet, error) {
	pet := &data.Pet{
		UserID:      userID,
		Name:        body.Name,
		Species:     body.Species,
		Breed:       body.Breed,
		AgeMonths:   body.AgeMonths,
		Description: body.Description,
		Status:      body.Status,
		Location:    body.Location,
	}
	// A listing created without an explicit status is an adoptable animal.
	if pet.Status == "" {
		pet.Status = data.PetStatusAdoptable
	}
	v := validator.New()
	if data.ValidatePet(v, pet); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err := s.repo.CreatePet(pet)
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// ShowPet service shows the details of a specific pet listing.
func (s *service) ShowPet(petID int64) (*data.Pet, error) {
	pet, err := s.repo.GetPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return pet, nil
}

// UpdatePet service updates the details of a specific pet listing.
func (s *service) UpdatePet(petID int64, body *dto.UpdatePetRequestBody) (*data.Pet, error) {
	pet, err := s.repo.GetPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if body.Name != nil {
		pet.Name = *body.Name
	}
	if body.Species != nil {
		pet.Species = *body.Species
	}
	if body.Breed != nil {
		pet.Breed = *body.Breed
	}
	if body.AgeMonths != nil {
		pet.AgeMonths = *body.AgeMonths
	}
	if body.Description != nil {
		pet.Description = *body.Description
	}
	if body.Status != nil {
		pet.Status = *body.Status
	}
	if body.Location != nil {
		pet.Location = *body.Location
	}
	v := validator.New()
	if data.ValidatePet(v, pet); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err = s.repo.UpdatePet(pet)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return pet, nil
}

// DeletePet service deletes a specific pet listing.
func (s *service) DeletePet(petID int64) error {
	err := s.repo.DeletePet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ListPets service lists pet listings. Records can be filtered by full-text
// search, species and status, and paginated and sorted.
func (s *service) ListPets(search string, species string, status string, filters data.Filters) ([]*data.Pet, data.Metadata, error) {
	v := validator.New()
	if status != "" {
		v.Check(validator.In(status, data.PetStatusAdoptable, data.PetStatusLost, data.PetStatusFound, data.PetStatusAdopted), "status", "must be one of adoptable, lost, found or adopted")
	}
	if data.ValidateFilters(v, filters); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, data.Metadata{}, ErrFailedValidation
	}
	pets, metadata, err := s.repo.GetAllPets(search, species, status, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return pets, metadata, nil
}

// UploadPetPhoto service uploads a photo for a pet listing to S3 object
// storage and records the photo URL on the listing.
func (s *service) UploadPetPhoto(petID int64, file multipart.File, fileHeader *multipart.FileHeader) (*data.Pet, error) {
	pet, err := s.repo.GetPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	v.Check(validator.Mime(mtype, "image/jpeg", "image/png", "image/webp"), "photo", "must be a jpeg, png or webp image")
	v.Check(fileHeader.Size <= 5_242_880, "photo", "must not be larger than 5MB")
	if !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	url, err := s.uploadFileToS3(s3Client, buffer, mtype, fileHeader)
	if err != nil {
		return nil, err
	}
	pet.PhotoURL = url
	err = s.repo.UpdatePet(pet)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return pet, nil
}
