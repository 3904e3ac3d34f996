package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fkhayef/giftbox/pkg/password"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameInUse    = errors.New("user name already in use")
)

// Service handles user business logic
type Service struct {
	repo   *Repository
	hasher password.Hasher
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository, hasher password.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Ensure returns the user with the given name, creating it if needed.
// New users get a hash of a random secret nobody knows.
func (s *Service) Ensure(ctx context.Context, name string) (*User, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := s.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}

	user := &User{Name: name, PasswordHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrNameInUse) {
			// Lost a race with a concurrent insert of the same name.
			return s.GetByName(ctx, name)
		}
		return nil, err
	}
	return user, nil
}

// GetByName retrieves a user by display name
func (s *Service) GetByName(ctx context.Context, name string) (*User, error) {
	user, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
