package gift

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/fkhayef/giftbox/pkg/objectid"
)

// MaxTitleLength bounds gift titles
const MaxTitleLength = 200

// Common errors
var (
	ErrGiftNotFound  = errors.New("gift not found")
	ErrInvalidID     = errors.New("invalid gift id")
	ErrTitleRequired = errors.New("gift title is required")
	ErrTitleTooLong  = errors.New("gift title is too long")
	ErrInvalidMember = errors.New("member does not belong to this group")
)

// MemberChecker reports whether a member exists inside a group
type MemberChecker interface {
	Exists(ctx context.Context, groupID, memberID string) (bool, error)
}

// Service handles gift business logic. groupID always comes from the
// resolved tenant, never from the request body.
type Service struct {
	repo    *Repository
	members MemberChecker
}

// NewService creates a new gift service
func NewService(repo *Repository, members MemberChecker) *Service {
	return &Service{repo: repo, members: members}
}

// Create validates and stores a gift under groupID
func (s *Service) Create(ctx context.Context, groupID string, req *CreateGiftRequest) (*Gift, error) {
	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	memberID, err := s.memberRef(ctx, groupID, req.MemberID)
	if err != nil {
		return nil, err
	}

	gift := &Gift{
		Title:       title,
		Description: optional(req.Description),
		URL:         optional(req.URL),
		GroupID:     groupID,
		MemberID:    memberID,
	}
	if err := s.repo.Create(ctx, gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// List returns the group's gifts, optionally filtered to one member
func (s *Service) List(ctx context.Context, groupID, memberID string) ([]*Gift, error) {
	return s.repo.ListByGroup(ctx, groupID, strings.TrimSpace(memberID))
}

// Get retrieves one gift of the group
func (s *Service) Get(ctx context.Context, groupID, id string) (*Gift, error) {
	if !objectid.Valid(id) {
		return nil, ErrInvalidID
	}
	gift, err := s.repo.GetByID(ctx, groupID, id)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, ErrGiftNotFound
	}
	return gift, nil
}

// Update applies the non-nil fields of req
func (s *Service) Update(ctx context.Context, groupID, id string, req *UpdateGiftRequest) (*Gift, error) {
	if !objectid.Valid(id) {
		return nil, ErrInvalidID
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		title, err := normalizeTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = nullable(optional(req.Description))
	}
	if req.URL != nil {
		updates["url"] = nullable(optional(req.URL))
	}
	if req.Purchased != nil {
		updates["purchased"] = *req.Purchased
	}
	if req.MemberID != nil {
		memberID, err := s.memberRef(ctx, groupID, req.MemberID)
		if err != nil {
			return nil, err
		}
		updates["member_id"] = nullable(memberID)
	}

	gift, err := s.repo.Update(ctx, groupID, id, updates)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, ErrGiftNotFound
	}
	return gift, nil
}

// TogglePurchased flips the purchased flag and returns the stored gift
func (s *Service) TogglePurchased(ctx context.Context, groupID, id string) (*Gift, error) {
	if !objectid.Valid(id) {
		return nil, ErrInvalidID
	}
	gift, err := s.repo.TogglePurchased(ctx, groupID, id)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, ErrGiftNotFound
	}
	return gift, nil
}

// Delete removes a gift of the group
func (s *Service) Delete(ctx context.Context, groupID, id string) error {
	if !objectid.Valid(id) {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, groupID, id)
}

// memberRef validates an optional member reference against the group.
// An empty reference clears it.
func (s *Service) memberRef(ctx context.Context, groupID string, ref *string) (*string, error) {
	id := optional(ref)
	if id == nil {
		return nil, nil
	}
	if !objectid.Valid(*id) {
		return nil, ErrInvalidMember
	}
	ok, err := s.members.Exists(ctx, groupID, *id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidMember
	}
	return id, nil
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// optional trims s and maps blank or missing values to nil
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// nullable turns a nil pointer into an untyped nil for column updates
func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
