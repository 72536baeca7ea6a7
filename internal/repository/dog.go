package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pawhaven/pawhaven/internal/model"
)

// Common errors for dog repository operations.
var (
	ErrDogNotFound       = errors.New("dog not found")
	ErrNegativeAvailable = errors.New("available count cannot go negative")
)

const dogColumns = `id, name, breed, age, gender, description, price, available_count, image_url, care_instructions, created_at`

// GetDogByID retrieves a dog by its ID regardless of availability.
func (r *Repository) GetDogByID(ctx context.Context, id string) (*model.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE id = $1`

	dog, err := scanDog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to get dog by ID: %w", err)
	}

	return dog, nil
}

// ListAvailableDogs returns all dogs with at least one adoptable unit.
// No ordering is guaranteed.
func (r *Repository) ListAvailableDogs(ctx context.Context) ([]*model.Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE available_count > 0`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}
	defer rows.Close()

	dogs := make([]*model.Dog, 0)
	for rows.Next() {
		dog, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dog: %w", err)
		}
		dogs = append(dogs, dog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dogs: %w", err)
	}

	return dogs, nil
}

// DecrementDogAvailability consumes one adoptable unit of the given dog.
// The schema-level CHECK constraint rejects a decrement below zero, which
// surfaces here as ErrNegativeAvailable.
func (r *Repository) DecrementDogAvailability(ctx context.Context, id string) error {
	query := `
		UPDATE dogs
		SET available_count = available_count - 1
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if isCheckViolation(err) {
			return ErrNegativeAvailable
		}
		return fmt.Errorf("failed to decrement dog availability: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDogNotFound
	}

	return nil
}

// SumAvailableDogs returns the total adoptable units across the catalog.
// An empty catalog sums to zero.
func (r *Repository) SumAvailableDogs(ctx context.Context) (int64, error) {
	var sum int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(available_count), 0) FROM dogs`).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum available dogs: %w", err)
	}
	return sum, nil
}

// CreateDog inserts a new catalog listing. Listings are seed/admin data;
// no API route creates them.
func (r *Repository) CreateDog(ctx context.Context, dog *model.Dog) error {
	query := `
		INSERT INTO dogs (` + dogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		dog.ID,
		dog.Name,
		dog.Breed,
		dog.Age,
		dog.Gender,
		dog.Description,
		dog.Price,
		dog.AvailableCount,
		dog.ImageURL,
		dog.CareInstructions,
		dog.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dog: %w", err)
	}

	return nil
}

// scanDog reads a dog row. The care_instructions JSONB column unmarshals
// directly into the nested struct.
func scanDog(row pgx.Row) (*model.Dog, error) {
	var dog model.Dog
	err := row.Scan(
		&dog.ID,
		&dog.Name,
		&dog.Breed,
		&dog.Age,
		&dog.Gender,
		&dog.Description,
		&dog.Price,
		&dog.AvailableCount,
		&dog.ImageURL,
		&dog.CareInstructions,
		&dog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dog, nil
}
