package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pawhaven/pawhaven/internal/metrics"
	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/repository"
)

// Adoption service errors.
var (
	ErrMissingDetails    = errors.New("all customer details are required")
	ErrDogUnavailable    = errors.New("dog not available for adoption")
	ErrNoPendingAdoption = errors.New("no pending adoption found")
)

// AdoptionService handles the adoption request lifecycle.
type AdoptionService struct {
	dogs      DogStore
	adoptions AdoptionStore
	metrics   metrics.Recorder
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(dogs DogStore, adoptions AdoptionStore, recorder metrics.Recorder) *AdoptionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AdoptionService{
		dogs:      dogs,
		adoptions: adoptions,
		metrics:   recorder,
	}
}

// CreateAdoptionInput defines input for creating an adoption request.
type CreateAdoptionInput struct {
	UserID   string
	DogID    string
	FullName string
	Email    string
	Phone    string
	Address  string
}

// CreateAdoption creates a pending adoption for an available dog.
//
// Availability is checked but not reserved: the unit is only consumed at
// completion, so two concurrent requests against the last unit can both
// land a pending adoption. Known race, kept as documented behavior.
func (s *AdoptionService) CreateAdoption(ctx context.Context, input CreateAdoptionInput) (*model.Dog, *model.Adoption, error) {
	if input.FullName == "" || input.Email == "" || input.Phone == "" || input.Address == "" {
		return nil, nil, ErrMissingDetails
	}

	dog, err := s.dogs.GetDogByID(ctx, input.DogID)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, nil, ErrDogUnavailable
		}
		return nil, nil, err
	}
	if !dog.Available() {
		return nil, nil, ErrDogUnavailable
	}

	adoption := &model.Adoption{
		ID:           ulid.Make().String(),
		UserID:       input.UserID,
		DogID:        input.DogID,
		AdoptionDate: time.Now().UTC(),
		CustomerDetails: model.CustomerDetails{
			Name:    input.FullName,
			Address: input.Address,
			Phone:   input.Phone,
			Email:   input.Email,
		},
		Status: model.AdoptionPending,
	}

	if err := s.adoptions.CreateAdoption(ctx, adoption); err != nil {
		return nil, nil, err
	}

	s.metrics.IncAdoptionCreated()

	return dog, adoption, nil
}

// CompleteAdoption flips the caller's pending adoption for the given dog
// to completed and consumes one adoptable unit.
//
// The decrement and the status flip are two separate writes with no
// transaction across them; a failure in between can leave the catalog and
// the ledger diverged. This mirrors the documented store behavior.
func (s *AdoptionService) CompleteAdoption(ctx context.Context, userID, dogID string) error {
	adoption, err := s.adoptions.GetPendingAdoption(ctx, userID, dogID)
	if err != nil {
		if errors.Is(err, repository.ErrAdoptionNotFound) {
			return ErrNoPendingAdoption
		}
		return err
	}

	if err := s.dogs.DecrementDogAvailability(ctx, dogID); err != nil {
		return err
	}

	if err := s.adoptions.UpdateAdoptionStatus(ctx, adoption.ID, model.AdoptionCompleted); err != nil {
		return err
	}

	s.metrics.IncAdoptionCompleted()

	return nil
}
