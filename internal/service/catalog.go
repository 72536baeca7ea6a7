package service

import (
	"context"
	"errors"

	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/repository"
)

// ErrDogNotFound indicates the requested dog does not exist.
var ErrDogNotFound = errors.New("dog not found")

// CatalogService handles dog browsing and aggregate statistics.
type CatalogService struct {
	users     UserStore
	dogs      DogStore
	adoptions AdoptionStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(users UserStore, dogs DogStore, adoptions AdoptionStore) *CatalogService {
	return &CatalogService{
		users:     users,
		dogs:      dogs,
		adoptions: adoptions,
	}
}

// ListAvailableDogs returns all dogs with at least one adoptable unit.
func (s *CatalogService) ListAvailableDogs(ctx context.Context) ([]*model.Dog, error) {
	return s.dogs.ListAvailableDogs(ctx)
}

// GetDog returns the full listing for a dog regardless of availability.
// A sold-out dog is still viewable.
func (s *CatalogService) GetDog(ctx context.Context, id string) (*model.Dog, error) {
	dog, err := s.dogs.GetDogByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}
	return dog, nil
}

// Stats is the aggregate snapshot served by the stats endpoint.
type Stats struct {
	DogsAvailable  int64
	CustomersCount int64
	DogsAdopted    int64
}

// Stats computes the three catalog aggregates. An empty catalog yields
// zeroes, not an error.
func (s *CatalogService) Stats(ctx context.Context) (*Stats, error) {
	dogsAvailable, err := s.dogs.SumAvailableDogs(ctx)
	if err != nil {
		return nil, err
	}

	customersCount, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	dogsAdopted, err := s.adoptions.CountAdoptionsByStatus(ctx, model.AdoptionCompleted)
	if err != nil {
		return nil, err
	}

	return &Stats{
		DogsAvailable:  dogsAvailable,
		CustomersCount: customersCount,
		DogsAdopted:    dogsAdopted,
	}, nil
}
