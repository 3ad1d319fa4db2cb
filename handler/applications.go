package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/service"
)

func (h *Handler) createApplicationHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateApplicationRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	petID, err := h.readIDParam(r, "petId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	application, err := h.service.CreateApplication(petID, user.ID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation) || errors.Is(err, service.ErrDuplicateRecord):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/applications/%d", application.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"application": application}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showApplicationHandler(w http.ResponseWriter, r *http.Request) {
	applicationID, err := h.readIDParam(r, "applicationId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	application, err := h.service.ShowApplication(applicationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	// An application is visible to the applicant and the pet's owner only
	user := h.contextGetUser(r)
	if user.ID != application.UserID {
		pet, err := h.service.ShowPet(application.PetID)
		if err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		if user.ID != pet.UserID {
			h.notPermittedResponse(w, r)
			return
		}
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"application": application}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) reviewApplicationHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.ReviewApplicationRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	applicationID, err := h.readIDParam(r, "applicationId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	application, err := h.service.ReviewApplication(applicationID, user.ID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"application": application}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listApplicationsForPetHandler(w http.ResponseWriter, r *http.Request) {
	petID, err := h.readIDParam(r, "petId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	applications, err := h.service.ListApplicationsForPet(petID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"applications": applications}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
