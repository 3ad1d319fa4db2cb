package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okezie/pawhaven/data"
)

type pets interface {
	CreatePet(pet *data.Pet) error
	GetPet(petID int64) (*data.Pet, error)
	UpdatePet(pet *data.Pet) error
	DeletePet(petID int64) error
	GetAllPets(search, species, status string, filters data.Filters) ([]*data.Pet, data.Metadata, error)
}

// CreatePet creates a pet listing record.
func (r *repository) CreatePet(pet *data.Pet) error {
	query := `
		INSERT INTO pets (user_id, name, species, breed, age_months, description, status, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version`
	args := []interface{}{
		pet.UserID,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.AgeMonths,
		pet.Description,
		pet.Status,
		pet.Location,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&pet.ID, &pet.CreatedAt, &pet.Version)
}

// GetPet retrieves a pet listing record.
func (r *repository) GetPet(petID int64) (*data.Pet, error) {
	if petID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, user_id, created_at, name, species, breed, age_months, description, status, location, COALESCE(photo_url, ''), version
		FROM pets
		WHERE id = $1`
	var pet data.Pet
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, petID).Scan(
		&pet.ID,
		&pet.UserID,
		&pet.CreatedAt,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&pet.AgeMonths,
		&pet.Description,
		&pet.Status,
		&pet.Location,
		&pet.PhotoURL,
		&pet.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &pet, nil
}

// UpdatePet updates a pet listing record.
func (r *repository) UpdatePet(pet *data.Pet) error {
	query := `
		UPDATE pets
		SET name = $1, species = $2, breed = $3, age_months = $4, description = $5, status = $6, location = $7, photo_url = $8, version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version`
	args := []interface{}{
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.AgeMonths,
		pet.Description,
		pet.Status,
		pet.Location,
		pet.PhotoURL,
		pet.ID,
		pet.Version,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&pet.Version)
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

// DeletePet deletes a pet listing record.
func (r *repository) DeletePet(petID int64) error {
	if petID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM pets
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, petID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetAllPets retrieves a paginated list of pet listing records. Records can
// be filtered by full-text search, species and status, and sorted.
func (r *repository) GetAllPets(search, species, status string, filters data.Filters) ([]*data.Pet, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, user_id, created_at, name, species, breed, age_months, description, status, location, COALESCE(photo_url, ''), version
		FROM pets
		WHERE (
			to_tsvector('simple', name) ||
			to_tsvector('simple', breed) ||
			to_tsvector('simple', description)
			@@ plainto_tsquery('simple', $1) OR $1 = ''
		)
		AND (LOWER(species) = LOWER($2) OR $2 = '')
		AND (LOWER(status) = LOWER($3) OR $3 = '')
		ORDER BY %s %s, id ASC
		LIMIT $4 OFFSET $5`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{
		search,
		species,
		status,
		filters.Limit(),
		filters.Offset(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	pets := []*data.Pet{}
	for rows.Next() {
		var pet data.Pet
		err := rows.Scan(
			&totalRecords,
			&pet.ID,
			&pet.UserID,
			&pet.CreatedAt,
			&pet.Name,
			&pet.Species,
			&pet.Breed,
			&pet.AgeMonths,
			&pet.Description,
			&pet.Status,
			&pet.Location,
			&pet.PhotoURL,
			&pet.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		pets = append(pets, &pet)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return pets, metadata, nil
}
