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

func (h *Handler) createCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCampaignRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user := h.contextGetUser(r)
	campaign, err := h.service.CreateCampaign(user.ID, &requestBody)
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
	headers.Set("Location", fmt.Sprintf("/v1/campaigns/%d", campaign.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"campaign": campaign}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showCampaignHandler(w http.ResponseWriter, r *http.Request) {
	campaignID, err := h.readIDParam(r, "campaignId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	campaign, err := h.service.ShowCampaign(campaignID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"campaign": campaign}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Search  string
		Filters data.Filters
	}
	v := validator.New()
	qs := r.URL.Query()
	input.Search = h.readString(qs, "search", "")
	input.Filters.Page = h.readInt(qs, "page", 1, v)
	input.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	input.Filters.Sort = h.readString(qs, "sort", "-created_at")
	input.Filters.SortSafelist = []string{"id", "title", "goal_cents", "created_at", "-id", "-title", "-goal_cents", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, fmt.Errorf("invalid query parameters"))
		return
	}
	campaigns, metadata, err := h.service.ListCampaigns(input.Search, input.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"campaigns": campaigns, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createDonationHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateDonationRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	campaignID, err := h.readIDParam(r, "campaignId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	donation, clientSecret, err := h.service.CreateDonation(campaignID, user.ID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrPaymentFailed):
			h.paymentFailedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/donations/%d", donation.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"donation": donation, "client_secret": clientSecret}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) confirmDonationHandler(w http.ResponseWriter, r *http.Request) {
	donationID, err := h.readIDParam(r, "donationId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	donation, err := h.service.ConfirmDonation(donationID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"donation": donation}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
