package testutil

import (
	"context"
	"sync"

	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/repository"
)

// MemStore is an in-memory stand-in for *repository.Repository.
// It satisfies the service store interfaces so service and handler tests
// run without a database. Error fields force the next matching call to
// fail, for exercising the 500 paths.
type MemStore struct {
	mu        sync.Mutex
	users     map[string]*model.User
	dogs      map[string]*model.Dog
	adoptions map[string]*model.Adoption

	UserErr     error
	DogErr      error
	AdoptionErr error
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:     make(map[string]*model.User),
		dogs:      make(map[string]*model.Dog),
		adoptions: make(map[string]*model.Adoption),
	}
}

// CreateUser inserts a user, enforcing username uniqueness.
func (m *MemStore) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UserErr != nil {
		return m.UserErr
	}
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return repository.ErrUsernameExists
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

// GetUserByUsername looks up a user by handle.
func (m *MemStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UserErr != nil {
		return nil, m.UserErr
	}
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// CountUsers returns the number of stored users.
func (m *MemStore) CountUsers(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UserErr != nil {
		return 0, m.UserErr
	}
	return int64(len(m.users)), nil
}

// AddDog seeds a dog listing.
func (m *MemStore) AddDog(dog *model.Dog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *dog
	m.dogs[dog.ID] = &copied
}

// GetDogByID returns a dog regardless of availability.
func (m *MemStore) GetDogByID(ctx context.Context, id string) (*model.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DogErr != nil {
		return nil, m.DogErr
	}
	dog, ok := m.dogs[id]
	if !ok {
		return nil, repository.ErrDogNotFound
	}
	copied := *dog
	return &copied, nil
}

// ListAvailableDogs returns dogs with available_count > 0.
func (m *MemStore) ListAvailableDogs(ctx context.Context) ([]*model.Dog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DogErr != nil {
		return nil, m.DogErr
	}
	dogs := make([]*model.Dog, 0)
	for _, dog := range m.dogs {
		if dog.AvailableCount > 0 {
			copied := *dog
			dogs = append(dogs, &copied)
		}
	}
	return dogs, nil
}

// DecrementDogAvailability consumes one unit, refusing to go negative
// the way the schema CHECK constraint does.
func (m *MemStore) DecrementDogAvailability(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DogErr != nil {
		return m.DogErr
	}
	dog, ok := m.dogs[id]
	if !ok {
		return repository.ErrDogNotFound
	}
	if dog.AvailableCount <= 0 {
		return repository.ErrNegativeAvailable
	}
	dog.AvailableCount--
	return nil
}

// SumAvailableDogs totals available units across the catalog.
func (m *MemStore) SumAvailableDogs(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DogErr != nil {
		return 0, m.DogErr
	}
	var sum int64
	for _, dog := range m.dogs {
		sum += int64(dog.AvailableCount)
	}
	return sum, nil
}

// CreateAdoption inserts an adoption record.
func (m *MemStore) CreateAdoption(ctx context.Context, adoption *model.Adoption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AdoptionErr != nil {
		return m.AdoptionErr
	}
	copied := *adoption
	m.adoptions[adoption.ID] = &copied
	return nil
}

// GetPendingAdoption finds the pending adoption for a (user, dog) pair.
func (m *MemStore) GetPendingAdoption(ctx context.Context, userID, dogID string) (*model.Adoption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AdoptionErr != nil {
		return nil, m.AdoptionErr
	}
	for _, adoption := range m.adoptions {
		if adoption.UserID == userID && adoption.DogID == dogID && adoption.Status == model.AdoptionPending {
			copied := *adoption
			return &copied, nil
		}
	}
	return nil, repository.ErrAdoptionNotFound
}

// UpdateAdoptionStatus persists a status change.
func (m *MemStore) UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AdoptionErr != nil {
		return m.AdoptionErr
	}
	adoption, ok := m.adoptions[id]
	if !ok {
		return repository.ErrAdoptionNotFound
	}
	adoption.Status = status
	return nil
}

// CountAdoptionsByStatus counts adoptions in the given state.
func (m *MemStore) CountAdoptionsByStatus(ctx context.Context, status model.AdoptionStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AdoptionErr != nil {
		return 0, m.AdoptionErr
	}
	var count int64
	for _, adoption := range m.adoptions {
		if adoption.Status == status {
			count++
		}
	}
	return count, nil
}

// Adoptions returns a snapshot of all adoption records.
func (m *MemStore) Adoptions() []*model.Adoption {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Adoption, 0, len(m.adoptions))
	for _, adoption := range m.adoptions {
		copied := *adoption
		out = append(out, &copied)
	}
	return out
}
