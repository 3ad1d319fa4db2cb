package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/service"
)

func (h *Handler) createPetHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreatePetRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user := h.contextGetUser(r)
	pet, err := h.service.CreatePet(user.ID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/pets/%d", pet.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"pet": pet}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showPetHandler(w http.ResponseWriter, r *http.Request) {
	petID, err := h.readIDParam(r, "petId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	pet, err := h.service.ShowPet(petID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"pet": pet}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updatePetHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdatePetRequestBody
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
	pet, err := h.service.UpdatePet(petID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"pet": pet}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deletePetHandler(w http.ResponseWriter, r *http.Request) {
	petID, err := h.readIDParam(r, "petId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeletePet(petID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "pet successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listPetsHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Search  string
		Species string
		Status  string
		Filters data.Filters
	}
	v := validator.New()
	qs := r.URL.Query()
	input.Search = h.readString(qs, "search", "")
	input.Species = h.readString(qs, "species", "")
	input.Status = h.readString(qs, "status", "")
	input.Filters.Page = h.readInt(qs, "page", 1, v)
	input.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	input.Filters.Sort = h.readString(qs, "sort", "-created_at")
	input.Filters.SortSafelist = []string{"id", "name", "age_months", "created_at", "-id", "-name", "-age_months", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, fmt.Errorf("invalid query parameters"))
		return
	}
	pets, metadata, err := h.service.ListPets(input.Search, input.Species, input.Status, input.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"pets": pets, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) uploadPetPhotoHandler(w http.ResponseWriter, r *http.Request) {
	petID, err := h.readIDParam(r, "petId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	// Limit the size of the photo upload to 5MB
	err = r.ParseMultipartForm(5_242_880)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()
	pet, err := h.service.UploadPetPhoto(petID, file, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"pet": pet}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
