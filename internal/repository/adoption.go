package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pawhaven/pawhaven/internal/model"
)

// ErrAdoptionNotFound indicates no adoption matched the lookup.
var ErrAdoptionNotFound = errors.New("adoption not found")

// CreateAdoption inserts a new adoption request.
func (r *Repository) CreateAdoption(ctx context.Context, adoption *model.Adoption) error {
	query := `
		INSERT INTO adoptions (id, user_id, dog_id, adoption_date, customer_details, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		adoption.ID,
		adoption.UserID,
		adoption.DogID,
		adoption.AdoptionDate,
		adoption.CustomerDetails,
		adoption.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create adoption: %w", err)
	}

	return nil
}

// GetPendingAdoption finds the pending adoption for a (user, dog) pair.
func (r *Repository) GetPendingAdoption(ctx context.Context, userID, dogID string) (*model.Adoption, error) {
	query := `
		SELECT id, user_id, dog_id, adoption_date, customer_details, status
		FROM adoptions
		WHERE user_id = $1 AND dog_id = $2 AND status = $3
		LIMIT 1
	`

	var adoption model.Adoption
	err := r.pool.QueryRow(ctx, query, userID, dogID, model.AdoptionPending).Scan(
		&adoption.ID,
		&adoption.UserID,
		&adoption.DogID,
		&adoption.AdoptionDate,
		&adoption.CustomerDetails,
		&adoption.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdoptionNotFound
		}
		return nil, fmt.Errorf("failed to get pending adoption: %w", err)
	}

	return &adoption, nil
}

// UpdateAdoptionStatus persists a status change for an adoption.
func (r *Repository) UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid adoption status %q", status)
	}

	query := `UPDATE adoptions SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update adoption status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAdoptionNotFound
	}

	return nil
}

// CountAdoptionsByStatus returns the number of adoptions in the given state.
func (r *Repository) CountAdoptionsByStatus(ctx context.Context, status model.AdoptionStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM adoptions WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count adoptions: %w", err)
	}
	return count, nil
}
