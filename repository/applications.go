package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/okezie/pawhaven/data"
)

type applications interface {
	CreateApplication(application *data.Application) error
	GetApplication(applicationID int64) (*data.Application, error)
	UpdateApplication(application *data.Application) error
	GetAllApplicationsForPet(petID int64) ([]*data.Application, error)
	GetAllApplicationsForUser(userID int64) ([]*data.Application, error)
}

// CreateApplication creates an adoption application record. The unique
// constraint on (pet_id, user_id) enforces one application per user per pet.
func (r *repository) CreateApplication(application *data.Application) error {
	query := `
		INSERT INTO applications (pet_id, user_id, message, home_details, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`
	args := []interface{}{
		application.PetID,
		application.UserID,
		application.Message,
		application.HomeDetails,
		application.Status,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&application.ID, &application.CreatedAt, &application.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "applications_pet_id_user_id_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// GetApplication retrieves an adoption application record.
func (r *repository) GetApplication(applicationID int64) (*data.Application, error) {
	if applicationID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, pet_id, user_id, message, home_details, status, created_at, version
		FROM applications
		WHERE id = $1`
	var application data.Application
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, applicationID).Scan(
		&application.ID,
		&application.PetID,
		&application.UserID,
		&application.Message,
		&application.HomeDetails,
		&application.Status,
		&application.CreatedAt,
		&application.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &application, nil
}

// UpdateApplication updates an adoption application record.
func (r *repository) UpdateApplication(application *data.Application) error {
	query := `
		UPDATE applications
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version`
	args := []interface{}{application.Status, application.ID, application.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&application.Version)
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

// GetAllApplicationsForPet retrieves all application records for a pet.
func (r *repository) GetAllApplicationsForPet(petID int64) ([]*data.Application, error) {
	query := `
		SELECT id, pet_id, user_id, message, home_details, status, created_at, version
		FROM applications
		WHERE pet_id = $1
		ORDER BY id ASC`
	return r.getAllApplications(query, petID)
}

// GetAllApplicationsForUser retrieves all application records submitted by a user.
func (r *repository) GetAllApplicationsForUser(userID int64) ([]*data.Application, error) {
	query := `
		SELECT id, pet_id, user_id, message, home_details, status, created_at, version
		FROM applications
		WHERE user_id = $1
		ORDER BY id ASC`
	return r.getAllApplications(query, userID)
}

func (r *repository) getAllApplications(query string, arg int64) ([]*data.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	applications := []*data.Application{}
	for rows.Next() {
		var application data.Application
		err := rows.Scan(
			&application.ID,
			&application.PetID,
			&application.UserID,
			&application.Message,
			&application.HomeDetails,
			&application.Status,
			&application.CreatedAt,
			&application.Version,
		)
		if err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}
