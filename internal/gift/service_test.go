package gift

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fkhayef/giftbox/internal/testutil"
	"github.com/fkhayef/giftbox/pkg/objectid"
)

const (
	groupA = "aaaaaaaaaaaaaaaaaaaaaaaa"
	groupB = "bbbbbbbbbbbbbbbbbbbbbbbb"
)

// stubMembers knows a fixed set of group/member pairs
type stubMembers map[string]string

func (s stubMembers) Exists(ctx context.Context, groupID, memberID string) (bool, error) {
	return s[memberID] == groupID, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T, members stubMembers) *Service {
	t.Helper()
	db := testutil.NewDB(t, &Gift{})
	return NewService(NewRepository(db), members)
}

func TestServiceCreate(t *testing.T) {
	memberA := objectid.New()
	memberB := objectid.New()
	svc := newTestService(t, stubMembers{memberA: groupA, memberB: groupB})
	ctx := context.Background()

	t.Run("trims title and drops blank optionals", func(t *testing.T) {
		g, err := svc.Create(ctx, groupA, &CreateGiftRequest{
			Title:       "  PS5  ",
			Description: strPtr("   "),
		})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if g.Title != "PS5" {
			t.Errorf("Title = %q, want %q", g.Title, "PS5")
		}
		if g.Description != nil || g.URL != nil || g.MemberID != nil {
			t.Errorf("optional fields should be nil, got %+v", g)
		}
		if g.Purchased {
			t.Error("new gifts start unpurchased")
		}

		stored, err := svc.Get(ctx, groupA, g.ID)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if stored.Title != "PS5" || stored.Description != nil {
			t.Errorf("stored gift = %+v", stored)
		}
	})

	t.Run("group comes from the tenant", func(t *testing.T) {
		g, err := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "Book", GroupID: groupB})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if g.GroupID != groupA {
			t.Errorf("GroupID = %q, want %q", g.GroupID, groupA)
		}
	})

	t.Run("addressed to a member of the group", func(t *testing.T) {
		g, err := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "Scarf", MemberID: strPtr(memberA)})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if g.MemberID == nil || *g.MemberID != memberA {
			t.Errorf("MemberID = %v, want %s", g.MemberID, memberA)
		}
	})

	tests := []struct {
		name    string
		req     CreateGiftRequest
		wantErr error
	}{
		{"empty title", CreateGiftRequest{Title: ""}, ErrTitleRequired},
		{"blank title", CreateGiftRequest{Title: "   "}, ErrTitleRequired},
		{"long title", CreateGiftRequest{Title: strings.Repeat("x", MaxTitleLength+1)}, ErrTitleTooLong},
		{"member of another group", CreateGiftRequest{Title: "Lamp", MemberID: strPtr(memberB)}, ErrInvalidMember},
		{"malformed member id", CreateGiftRequest{Title: "Lamp", MemberID: strPtr("nope")}, ErrInvalidMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, groupA, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceList(t *testing.T) {
	memberA := objectid.New()
	svc := newTestService(t, stubMembers{memberA: groupA})
	ctx := context.Background()

	first, _ := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "first"})
	second, _ := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "second", MemberID: strPtr(memberA)})
	if _, err := svc.Create(ctx, groupB, &CreateGiftRequest{Title: "other tenant"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	all, err := svc.List(ctx, groupA, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() returned %d gifts, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("List() order = [%s %s], want newest first", all[0].Title, all[1].Title)
	}

	filtered, err := svc.List(ctx, groupA, memberA)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != second.ID {
		t.Errorf("filtered List() = %v", filtered)
	}
}

func TestServiceTenantIsolation(t *testing.T) {
	svc := newTestService(t, stubMembers{})
	ctx := context.Background()

	g, err := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "secret"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := svc.Get(ctx, groupB, g.ID); !errors.Is(err, ErrGiftNotFound) {
		t.Errorf("Get() from other tenant error = %v, want ErrGiftNotFound", err)
	}
	if _, err := svc.Update(ctx, groupB, g.ID, &UpdateGiftRequest{Title: strPtr("stolen")}); !errors.Is(err, ErrGiftNotFound) {
		t.Errorf("Update() from other tenant error = %v, want ErrGiftNotFound", err)
	}
	if _, err := svc.TogglePurchased(ctx, groupB, g.ID); !errors.Is(err, ErrGiftNotFound) {
		t.Errorf("TogglePurchased() from other tenant error = %v, want ErrGiftNotFound", err)
	}
	if err := svc.Delete(ctx, groupB, g.ID); !errors.Is(err, ErrGiftNotFound) {
		t.Errorf("Delete() from other tenant error = %v, want ErrGiftNotFound", err)
	}

	stored, err := svc.Get(ctx, groupA, g.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if stored.Title != "secret" || stored.Purchased {
		t.Errorf("gift changed by another tenant: %+v", stored)
	}
}

func TestServiceTogglePurchasedTwice(t *testing.T) {
	svc := newTestService(t, stubMembers{})
	ctx := context.Background()

	g, _ := svc.Create(ctx, groupA, &CreateGiftRequest{Title: "Bike"})

	once, err := svc.TogglePurchased(ctx, groupA, g.ID)
	if err != nil {
		t.Fatalf("TogglePurchased() error: %v", err)
	}
	if !once.Purchased {
		t.Error("first toggle should mark purchased")
	}

	twice, err := svc.TogglePurchased(ctx, groupA, g.ID)
	if err != nil {
		t.Fatalf("TogglePurchased() error: %v", err)
	}
	if twice.Purchased != g.Purchased {
		t.Errorf("two toggles: Purchased = %v, want original %v", twice.Purchased, g.Purchased)
	}
}

func TestServiceUpdate(t *testing.T) {
	memberA := objectid.New()
	svc := newTestService(t, stubMembers{memberA: groupA})
	ctx := context.Background()

	g, _ := svc.Create(ctx, groupA, &CreateGiftRequest{
		Title:       "Kettle",
		Description: strPtr("electric"),
		MemberID:    strPtr(memberA),
	})

	updated, err := svc.Update(ctx, groupA, g.ID, &UpdateGiftRequest{
		Title:       strPtr(" Teapot "),
		Description: strPtr(""),
		URL:         strPtr("https://shop.example.com/teapot"),
		Purchased:   boolPtr(true),
		MemberID:    strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Title != "Teapot" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.Description != nil {
		t.Errorf("Description = %q, want cleared", *updated.Description)
	}
	if updated.URL == nil || *updated.URL != "https://shop.example.com/teapot" {
		t.Errorf("URL = %v", updated.URL)
	}
	if !updated.Purchased {
		t.Error("Purchased should be true")
	}
	if updated.MemberID != nil {
		t.Errorf("MemberID = %q, want cleared", *updated.MemberID)
	}

	untouched, err := svc.Update(ctx, groupA, g.ID, &UpdateGiftRequest{})
	if err != nil {
		t.Fatalf("empty Update() error: %v", err)
	}
	if untouched.Title != "Teapot" || !untouched.Purchased {
		t.Errorf("empty update changed the gift: %+v", untouched)
	}

	if _, err := svc.Update(ctx, groupA, g.ID, &UpdateGiftRequest{Title: strPtr("  ")}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title error = %v, want ErrTitleRequired", err)
	}
}

func TestServiceRejectsMalformedIDs(t *testing.T) {
	// A nil repository panics on any store access
	svc := NewService(NewRepository(nil), stubMembers{})
	ctx := context.Background()

	for _, id := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", strings.Repeat("a", 25)} {
		if _, err := svc.Get(ctx, groupA, id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Get(%q) error = %v", id, err)
		}
		if _, err := svc.Update(ctx, groupA, id, &UpdateGiftRequest{}); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Update(%q) error = %v", id, err)
		}
		if _, err := svc.TogglePurchased(ctx, groupA, id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("TogglePurchased(%q) error = %v", id, err)
		}
		if err := svc.Delete(ctx, groupA, id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Delete(%q) error = %v", id, err)
		}
	}
}

func TestRepositoryDeleteByMember(t *testing.T) {
	db := testutil.NewDB(t, &Gift{})
	repo := NewRepository(db)
	ctx := context.Background()

	member := objectid.New()
	for _, g := range []*Gift{
		{Title: "one", GroupID: groupA, MemberID: strPtr(member)},
		{Title: "two", GroupID: groupA, MemberID: strPtr(member)},
		{Title: "unassigned", GroupID: groupA},
		{Title: "same member id, other group", GroupID: groupB, MemberID: strPtr(member)},
	} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	n, err := repo.DeleteByMember(ctx, groupA, member)
	if err != nil {
		t.Fatalf("DeleteByMember() error: %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteByMember() removed %d, want 2", n)
	}

	left, _ := repo.ListByGroup(ctx, groupA, "")
	if len(left) != 1 || left[0].Title != "unassigned" {
		t.Errorf("remaining gifts in group A = %v", left)
	}
	other, _ := repo.ListByGroup(ctx, groupB, "")
	if len(other) != 1 {
		t.Errorf("group B lost gifts: %v", other)
	}
}
