package member

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fkhayef/giftbox/internal/database"
	"github.com/fkhayef/giftbox/internal/gift"
	"github.com/fkhayef/giftbox/internal/user"
	"github.com/fkhayef/giftbox/pkg/objectid"
)

// MaxNameLength bounds member display names
const MaxNameLength = 50

// namePattern allows letters, digits, spaces, dots and hyphens only
var namePattern = regexp.MustCompile(`^[\p{L}\p{N} .\-]+$`)

// Common errors
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("already a member of this group")
	ErrNameRequired        = errors.New("member name is required")
	ErrInvalidName         = errors.New("member name may contain only letters, digits, spaces, dots and hyphens")
)

// Service handles membership business logic
type Service struct {
	repo  *Repository
	users *user.Service
	gifts *gift.Repository
	tx    *database.TxManager
}

// NewService creates a new membership service
func NewService(repo *Repository, users *user.Service, gifts *gift.Repository, tx *database.TxManager) *Service {
	return &Service{repo: repo, users: users, gifts: gifts, tx: tx}
}

// ValidateName normalizes and checks a display name
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength || !namePattern.MatchString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

// Create adds a person to the group, creating or reusing the user by name
func (s *Service) Create(ctx context.Context, groupID string, req *CreateMemberRequest) (*Membership, error) {
	name, err := ValidateName(req.Name)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByName(ctx, name)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		taken, err := s.repo.ExistsForUser(ctx, groupID, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrMemberAlreadyExists
		}
	}

	u, err := s.users.Ensure(ctx, name)
	if err != nil {
		return nil, err
	}

	m := &Membership{UserID: u.ID, GroupID: groupID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.User = *u

	return m, nil
}

// List returns the group's roster, newest first
func (s *Service) List(ctx context.Context, groupID string) ([]*Membership, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// Exists reports whether memberID belongs to groupID
func (s *Service) Exists(ctx context.Context, groupID, memberID string) (bool, error) {
	return s.repo.Exists(ctx, groupID, memberID)
}

// Delete removes a member with its gifts, then the membership, then the user.
// The steps run in one transaction; a failing step aborts the rest.
// The user row survives while another group still references it.
func (s *Service) Delete(ctx context.Context, groupID, id string) error {
	if !objectid.Valid(id) {
		return ErrMemberNotFound
	}

	m, err := s.repo.GetByID(ctx, groupID, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMemberNotFound
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.gifts.DeleteByMember(ctx, groupID, m.ID); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, groupID, m.ID); err != nil {
			return err
		}

		remaining, err := s.repo.CountByUser(ctx, m.UserID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		return s.users.Delete(ctx, m.UserID)
	})
}
