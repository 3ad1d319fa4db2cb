package service

import (
	"errors"
	"strings"

	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/mailer"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/repository"
)

type applications interface {
	CreateApplication(petID int64, userID int64, body *dto.CreateApplicationRequestBody) (*data.Application, error)
	ShowApplication(applicationID int64) (*data.Application, error)
	ReviewApplication(applicationID int64, reviewerID int64, body *dto.ReviewApplicationRequestBody) (*data.Application, error)
	ListApplicationsForPet(petID int64, requesterID int64) ([]*data.Application, error)
	ListApplicationsForUser(userID int64) ([]*data.Application, error)
}

// CreateApplication service submits an adoption application for a pet. The
// pet must be adoptable and cannot belong to the applicant.
func (s *service) CreateApplication(petID int64, userID int64, body *dto.CreateApplicationRequestBody) (*data.Application, error) {
	pet, err := s.repo.GetPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	v := validator.New()
	if pet.UserID == userID {
		v.AddError("pet_id", "cannot apply to adopt your own pet")
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	if pet.Status != data.PetStatusAdoptable {
		v.AddError("pet_id", "pet is not available for adoption")
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	application := &data.Application{
		PetID:       petID,
		UserID:      userID,
		Message:     body.Message,
		HomeDetails: body.HomeDetails,
		Status:      data.ApplicationStatusPending,
	}
	if data.ValidateApplication(v, application); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err = s.repo.CreateApplication(application)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("pet_id", "an application for this pet already exists")
			ErrDuplicateRecord = s.failedValidation(v.Errors)
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return application, nil
}

// ShowApplication service shows the details of a specific adoption application.
func (s *service) ShowApplication(applicationID int64) (*data.Application, error) {
	application, err := s.repo.GetApplication(applicationID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return application, nil
}

// ReviewApplication service approves or rejects a pending adoption
// application. Only the pet's owner may review. Approval marks the pet as
// adopted, and the applicant is notified of the decision by email.
func (s *service) ReviewApplication(applicationID int64, reviewerID int64, body *dto.ReviewApplicationRequestBody) (*data.Application, error) {
	application, err := s.repo.GetApplication(applicationID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	pet, err := s.repo.GetPet(application.PetID)
	if err != nil {
		return nil, err
	}
	if pet.UserID != reviewerID {
		return nil, ErrNotPermitted
	}
	v := validator.New()
	if data.ValidateApplicationStatus(v, body.Status); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	if application.Status != data.ApplicationStatusPending {
		v.AddError("status", "application has already been reviewed")
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	application.Status = body.Status
	err = s.repo.UpdateApplication(application)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	if application.Status == data.ApplicationStatusApproved {
		pet.Status = data.PetStatusAdopted
		err = s.repo.UpdatePet(pet)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrEditConflict):
				return nil, ErrEditConflict
			default:
				return nil, err
			}
		}
	}
	// Notify the applicant of the decision via email
	applicant, err := s.repo.GetUserByID(application.UserID)
	if err == nil {
		s.background(func() {
			data := map[string]string{
				"userName": strings.Split(applicant.Name, " ")[0],
				"petName":  pet.Name,
				"status":   application.Status,
			}
			mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
			err := mailer.Send(applicant.Email, "application_status.tmpl", data)
			if err != nil {
				s.logger.PrintError(err, nil)
			}
		})
	}
	return application, nil
}

// ListApplicationsForPet service lists all applications submitted for a pet.
// Only the pet's owner may view them.
func (s *service) ListApplicationsForPet(petID int64, requesterID int64) ([]*data.Application, error) {
	pet, err := s.repo.GetPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if pet.UserID != requesterID {
		return nil, ErrNotPermitted
	}
	applications, err := s.repo.GetAllApplicationsForPet(petID)
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ListApplicationsForUser service lists all applications submitted by a user.
func (s *service) ListApplicationsForUser(userID int64) ([]*data.Application, error) {
	applications, err := s.repo.GetAllApplicationsForUser(userID)
	if err != nil {
		return nil, err
	}
	return applications, nil
}
