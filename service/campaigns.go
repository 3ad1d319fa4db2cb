package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okezie/pawhaven/clients"
	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/mailer"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/repository"
)

type campaigns interface {
	CreateCampaign(userID int64, body *dto.CreateCampaignRequestBody) (*data.Campaign, error)
	ShowCampaign(campaignID int64) (*data.Campaign, error)
	ListCampaigns(search string, filters data.Filters) ([]*data.Campaign, data.Metadata, error)
	CreateDonation(campaignID int64, userID int64, body *dto.CreateDonationRequestBody) (*data.Donation, string, error)
	ConfirmDonation(donationID int64, userID int64) (*data.Donation, error)
}

// CreateCampaign service creates a new crowdfunding campaign.
func (s *service) CreateCampaign(userID int64, body *dto.CreateCampaignRequestBody) (*data.Campaign, error) {
	campaign := &data.Campaign{
		UserID:      userID,
		Title:       body.Title,
		Description: body.Description,
		GoalCents:   body.GoalCents,
	}
	v := validator.New()
	if data.ValidateCampaign(v, campaign); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err := s.repo.CreateCampaign(campaign)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// ShowCampaign service shows a campaign along with its raised total.
func (s *service) ShowCampaign(campaignID int64) (*data.Campaign, error) {
	campaign, err := s.repo.GetCampaign(campaignID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return campaign, nil
}

// ListCampaigns service lists campaigns, optionally filtered by full-text
// search, with pagination and sorting.
func (s *service) ListCampaigns(search string, filters data.Filters) ([]*data.Campaign, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, data.Metadata{}, ErrFailedValidation
	}
	campaigns, metadata, err := s.repo.GetAllCampaigns(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return campaigns, metadata, nil
}

// CreateDonation service registers a donation to a campaign. A payment intent
// is created with the payment provider and the donation is stored pending
// until the payment is confirmed. The provider's client secret is returned so
// the charge can be completed client-side.
func (s *service) CreateDonation(campaignID int64, userID int64, body *dto.CreateDonationRequestBody) (*data.Donation, string, error) {
	campaign, err := s.repo.GetCampaign(campaignID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, "", ErrRecordNotFound
		default:
			return nil, "", err
		}
	}
	donation := &data.Donation{
		CampaignID:  campaign.ID,
		UserID:      userID,
		AmountCents: body.AmountCents,
		Status:      data.DonationStatusPending,
	}
	v := validator.New()
	if data.ValidateDonation(v, donation); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, "", ErrFailedValidation
	}
	paymentClient := clients.NewPaymentClient(s.config)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	intent, err := paymentClient.CreateIntent(ctx, donation.AmountCents, map[string]string{
		"campaign_id": strconv.FormatInt(campaign.ID, 10),
		"user_id":     strconv.FormatInt(userID, 10),
	})
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrPaymentDeclined):
			return nil, "", ErrPaymentFailed
		default:
			return nil, "", err
		}
	}
	donation.IntentID = intent.ID
	err = s.repo.CreateDonation(donation)
	if err != nil {
		return nil, "", err
	}
	return donation, intent.ClientSecret, nil
}

// ConfirmDonation service checks the payment provider for the outcome of a
// pending donation's charge and finalizes the donation record. A receipt is
// emailed to the donor when the payment succeeded.
func (s *service) ConfirmDonation(donationID int64, userID int64) (*data.Donation, error) {
	donation, err := s.repo.GetDonation(donationID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if donation.UserID != userID {
		return nil, ErrNotPermitted
	}
	if donation.Status != data.DonationStatusPending {
		return donation, nil
	}
	paymentClient := clients.NewPaymentClient(s.config)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	intent, err := paymentClient.GetIntent(ctx, donation.IntentID)
	if err != nil {
		return nil, err
	}
	switch intent.Status {
	case "succeeded":
		donation.Status = data.DonationStatusSucceeded
	case "canceled", "failed":
		donation.Status = data.DonationStatusFailed
	default:
		// Still processing on the provider's side; leave the record pending.
		return donation, nil
	}
	err = s.repo.UpdateDonation(donation)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	if donation.Status == data.DonationStatusSucceeded {
		donor, err := s.repo.GetUserByID(donation.UserID)
		if err == nil {
			campaign, err := s.repo.GetCampaign(donation.CampaignID)
			if err == nil {
				s.background(func() {
					data := map[string]string{
						"userName":      strings.Split(donor.Name, " ")[0],
						"campaignTitle": campaign.Title,
						"amount":        fmt.Sprintf("%.2f", float64(donation.AmountCents)/100),
					}
					mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
					err := mailer.Send(donor.Email, "donation_receipt.tmpl", data)
					if err != nil {
						s.logger.PrintError(err, nil)
					}
				})
			}
		}
	}
	return donation, nil
}
