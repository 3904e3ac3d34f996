package group

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/fkhayef/giftbox/pkg/password"
)

// MinPasswordLength is the shortest accepted group password
const MinPasswordLength = 6

// Common errors
var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrGroupNameTaken   = errors.New("group name already taken")
	ErrNameRequired     = errors.New("group name and password are required")
	ErrNameTooLong      = errors.New("group name must be at most 100 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidPassword  = errors.New("invalid password")
)

// Service handles group business logic
type Service struct {
	repo   *Repository
	hasher password.Hasher
}

// NewService creates a new group service
func NewService(repo *Repository, hasher password.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register creates a new group with a hashed password
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, ErrNameTooLong
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGroupNameTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	group := &Group{Name: name, PasswordHash: hash}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Authenticate checks a name/password pair.
// Unknown names yield ErrGroupNotFound, wrong passwords ErrInvalidPassword.
func (s *Service) Authenticate(ctx context.Context, name, secret string) (*Group, error) {
	group, err := s.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(secret, group.PasswordHash) {
		return nil, ErrInvalidPassword
	}
	return group, nil
}

// GetByName retrieves a group by name
func (s *Service) GetByName(ctx context.Context, name string) (*Group, error) {
	group, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}
