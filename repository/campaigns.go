package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okezie/pawhaven/data"
)

type campaigns interface {
	CreateCampaign(campaign *data.Campaign) error
	GetCampaign(campaignID int64) (*data.Campaign, error)
	GetAllCampaigns(search string, filters data.Filters) ([]*data.Campaign, data.Metadata, error)
	CreateDonation(donation *data.Donation) error
	GetDonation(donationID int64) (*data.Donation, error)
	UpdateDonation(donation *data.Donation) error
}

// CreateCampaign creates a crowdfunding campaign record.
func (r *repository) CreateCampaign(campaign *data.Campaign) error {
	query := `
		INSERT INTO campaigns (user_id, title, description, goal_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	args := []interface{}{campaign.UserID, campaign.Title, campaign.Description, campaign.GoalCents}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.Version)
}

// GetCampaign retrieves a campaign record along with the sum of its
// succeeded donations.
func (r *repository) GetCampaign(campaignID int64) (*data.Campaign, error) {
	if campaignID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT campaigns.id, campaigns.user_id, campaigns.title, campaigns.description, campaigns.goal_cents,
			COALESCE((SELECT sum(amount_cents) FROM donations WHERE campaign_id = campaigns.id AND status = 'succeeded'), 0),
			campaigns.created_at, campaigns.version
		FROM campaigns
		WHERE campaigns.id = $1`
	var campaign data.Campaign
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, campaignID).Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Title,
		&campaign.Description,
		&campaign.GoalCents,
		&campaign.RaisedCents,
		&campaign.CreatedAt,
		&campaign.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &campaign, nil
}

// GetAllCampaigns retrieves a paginated list of campaign records with their
// raised totals, optionally filtered by full-text search.
func (r *repository) GetAllCampaigns(search string, filters data.Filters) ([]*data.Campaign, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), campaigns.id, campaigns.user_id, campaigns.title, campaigns.description, campaigns.goal_cents,
			COALESCE((SELECT sum(amount_cents) FROM donations WHERE campaign_id = campaigns.id AND status = 'succeeded'), 0),
			campaigns.created_at, campaigns.version
		FROM campaigns
		WHERE (
			to_tsvector('simple', campaigns.title) ||
			to_tsvector('simple', campaigns.description)
			@@ plainto_tsquery('simple', $1) OR $1 = ''
		)
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	campaigns := []*data.Campaign{}
	for rows.Next() {
		var campaign data.Campaign
		err := rows.Scan(
			&totalRecords,
			&campaign.ID,
			&campaign.UserID,
			&campaign.Title,
			&campaign.Description,
			&campaign.GoalCents,
			&campaign.RaisedCents,
			&campaign.CreatedAt,
			&campaign.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		campaigns = append(campaigns, &campaign)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return campaigns, metadata, nil
}

// CreateDonation creates a donation record.
func (r *repository) CreateDonation(donation *data.Donation) error {
	query := `
		INSERT INTO donations (campaign_id, user_id, amount_cents, status, intent_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`
	args := []interface{}{
		donation.CampaignID,
		donation.UserID,
		donation.AmountCents,
		donation.Status,
		donation.IntentID,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&donation.ID, &donation.CreatedAt, &donation.Version)
}

// GetDonation retrieves a donation record.
func (r *repository) GetDonation(donationID int64) (*data.Donation, error) {
	if donationID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, campaign_id, user_id, amount_cents, status, intent_id, created_at, version
		FROM donations
		WHERE id = $1`
	var donation data.Donation
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, donationID).Scan(
		&donation.ID,
		&donation.CampaignID,
		&donation.UserID,
		&donation.AmountCents,
		&donation.Status,
		&donation.IntentID,
		&donation.CreatedAt,
		&donation.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &donation, nil
}

// UpdateDonation updates a donation record's status.
func (r *repository) UpdateDonation(donation *data.Donation) error {
	query := `
		UPDATE donations
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version`
	args := []interface{}{donation.Status, donation.ID, donation.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&donation.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}
