package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pawhaven/pawhaven/internal/auth"
	"github.com/pawhaven/pawhaven/internal/metrics"
	"github.com/pawhaven/pawhaven/internal/model"
	"github.com/pawhaven/pawhaven/internal/repository"
)

// Account service errors.
var (
	ErrMissingFields = errors.New("all fields are required")
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService handles registration and login.
type AccountService struct {
	users   UserStore
	tokens  *auth.TokenIssuer
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserStore, tokens *auth.TokenIssuer, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering an account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, ErrMissingFields
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Login verifies credentials and issues a signed bearer token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailed()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	return token, nil
}
