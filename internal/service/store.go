// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/pawhaven/pawhaven/internal/model"
)

// UserStore is the persistence surface required by the account service.
// Implemented by *repository.Repository.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// DogStore is the persistence surface for the dog catalog.
// Implemented by *repository.Repository.
type DogStore interface {
	GetDogByID(ctx context.Context, id string) (*model.Dog, error)
	ListAvailableDogs(ctx context.Context) ([]*model.Dog, error)
	DecrementDogAvailability(ctx context.Context, id string) error
	SumAvailableDogs(ctx context.Context) (int64, error)
}

// AdoptionStore is the persistence surface for the adoption ledger.
// Implemented by *repository.Repository.
type AdoptionStore interface {
	CreateAdoption(ctx context.Context, adoption *model.Adoption) error
	GetPendingAdoption(ctx context.Context, userID, dogID string) (*model.Adoption, error)
	UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) error
	CountAdoptionsByStatus(ctx context.Context, status model.AdoptionStatus) (int64, error)
}
