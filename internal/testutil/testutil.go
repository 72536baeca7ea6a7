// Package testutil provides helpers for integration and unit tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawhaven/pawhaven/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 740740

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// resetSchema applies the named migration's down then up script.
func resetSchema(ctx context.Context, pool *pgxpool.Pool, migration string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", migration+".down.sql")
	upPath := filepath.Join(root, "migrations", migration+".up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// ResetUsersSchema drops and recreates the users table for tests.
func ResetUsersSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000001_users")
}

// ResetDogsSchema drops and recreates the dogs table for tests.
func ResetDogsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000002_dogs")
}

// ResetAdoptionsSchema drops and recreates the adoptions table for tests.
func ResetAdoptionsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000003_adoptions")
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestDog creates a dog listing with sensible defaults.
func NewTestDog(t testing.TB, name string) *model.Dog {
	t.Helper()
	now := time.Now().UTC()
	return &model.Dog{
		ID:             UniqueID("dog"),
		Name:           name,
		Breed:          "Labrador",
		Age:            3,
		Gender:         "male",
		Description:    "Test listing for " + name,
		Price:          250,
		AvailableCount: 1,
		ImageURL:       "/images/dogs/test.jpg",
		CareInstructions: model.CareInstructions{
			Food:     "Twice daily",
			Exercise: "Daily walks",
			Grooming: "Weekly brushing",
		},
		CreatedAt: now,
	}
}

// NewTestUser creates a user record with a fixed placeholder hash.
func NewTestUser(t testing.TB, username string) *model.User {
	t.Helper()
	return &model.User{
		ID:           UniqueID("user"),
		Username:     username,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest12",
		Email:        username + "@example.com",
		CreatedAt:    time.Now().UTC(),
	}
}

// NewTestAdoption creates a pending adoption linking userID and dogID.
func NewTestAdoption(t testing.TB, userID, dogID string) *model.Adoption {
	t.Helper()
	return &model.Adoption{
		ID:           UniqueID("adoption"),
		UserID:       userID,
		DogID:        dogID,
		AdoptionDate: time.Now().UTC(),
		CustomerDetails: model.CustomerDetails{
			Name:    "Test Adopter",
			Email:   "adopter@example.com",
			Phone:   "555-0100",
			Address: "1 Test Street",
		},
		Status: model.AdoptionPending,
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
