package member

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/database"
	"github.com/fkhayef/giftbox/internal/gift"
	"github.com/fkhayef/giftbox/internal/group"
	"github.com/fkhayef/giftbox/internal/testutil"
	"github.com/fkhayef/giftbox/internal/user"
)

const (
	groupA = "aaaaaaaaaaaaaaaaaaaaaaaa"
	groupB = "bbbbbbbbbbbbbbbbbbbbbbbb"
)

type fixture struct {
	db      *gorm.DB
	service *Service
	users   *user.Repository
	gifts   *gift.Repository
}

func newFixture(t *testing.T, models ...interface{}) *fixture {
	t.Helper()
	if len(models) == 0 {
		models = []interface{}{&group.Group{}, &user.User{}, &Membership{}, &gift.Gift{}}
	}
	db := testutil.NewDB(t, models...)

	users := user.NewRepository(db)
	gifts := gift.NewRepository(db)
	svc := NewService(
		NewRepository(db),
		user.NewService(users, testutil.PlainHasher{}),
		gifts,
		database.NewTxManager(db),
	)
	return &fixture{db: db, service: svc, users: users, gifts: gifts}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{raw: "Anna", want: "Anna"},
		{raw: "  Jean-Luc  ", want: "Jean-Luc"},
		{raw: "Dr. Who 2", want: "Dr. Who 2"},
		{raw: "Анна", want: "Анна"},
		{raw: "Jürgen", want: "Jürgen"},
		{raw: "", wantErr: ErrNameRequired},
		{raw: "   ", wantErr: ErrNameRequired},
		{raw: "Anna<script>", wantErr: ErrInvalidName},
		{raw: "Bob_1", wantErr: ErrInvalidName},
		{raw: "Tom & Jerry", wantErr: ErrInvalidName},
		{raw: strings.Repeat("a", MaxNameLength), want: strings.Repeat("a", MaxNameLength)},
		{raw: strings.Repeat("a", MaxNameLength+1), wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ValidateName(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateName(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestServiceCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: " Anna "})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if m.GroupID != groupA || m.User.Name != "Anna" || m.UserID == "" {
		t.Errorf("membership = %+v", m)
	}

	if _, err := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Anna"}); !errors.Is(err, ErrMemberAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrMemberAlreadyExists", err)
	}

	t.Run("same person joins another group", func(t *testing.T) {
		other, err := f.service.Create(ctx, groupB, &CreateMemberRequest{Name: "Anna"})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if other.UserID != m.UserID {
			t.Errorf("user not reused: %s != %s", other.UserID, m.UserID)
		}
	})

	t.Run("new users get an unusable password", func(t *testing.T) {
		u, _ := f.users.GetByName(ctx, "Anna")
		if u == nil || u.PasswordHash == "" {
			t.Fatalf("user = %+v", u)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		if _, err := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "<b>"}); !errors.Is(err, ErrInvalidName) {
			t.Errorf("error = %v, want ErrInvalidName", err)
		}
	})
}

func TestServiceList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Anna", "Ben", "Cleo"} {
		if _, err := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: name}); err != nil {
			t.Fatalf("Create(%s) error: %v", name, err)
		}
	}
	f.service.Create(ctx, groupB, &CreateMemberRequest{Name: "Dora"})

	members, err := f.service.List(ctx, groupA)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("List() returned %d members, want 3", len(members))
	}
	if members[0].User.Name != "Cleo" || members[2].User.Name != "Anna" {
		t.Errorf("order = %s, %s, %s; want newest first",
			members[0].User.Name, members[1].User.Name, members[2].User.Name)
	}
}

func TestServiceDeleteCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	anna, _ := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Anna"})
	ben, _ := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Ben"})
	for _, g := range []*gift.Gift{
		{Title: "for anna 1", GroupID: groupA, MemberID: &anna.ID},
		{Title: "for anna 2", GroupID: groupA, MemberID: &anna.ID},
		{Title: "for ben", GroupID: groupA, MemberID: &ben.ID},
	} {
		if err := f.gifts.Create(ctx, g); err != nil {
			t.Fatalf("gift Create() error: %v", err)
		}
	}

	if err := f.service.Delete(ctx, groupA, anna.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	left, _ := f.gifts.ListByGroup(ctx, groupA, "")
	if len(left) != 1 || left[0].Title != "for ben" {
		t.Errorf("remaining gifts = %v", left)
	}
	if ok, _ := f.service.Exists(ctx, groupA, anna.ID); ok {
		t.Error("membership still exists")
	}
	if u, _ := f.users.GetByID(ctx, anna.UserID); u != nil {
		t.Error("user row should be removed with its last membership")
	}

	if err := f.service.Delete(ctx, groupA, anna.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("second Delete() error = %v, want ErrMemberNotFound", err)
	}
}

func TestServiceDeleteKeepsSharedUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inA, _ := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Anna"})
	inB, _ := f.service.Create(ctx, groupB, &CreateMemberRequest{Name: "Anna"})

	if err := f.service.Delete(ctx, groupA, inA.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if u, _ := f.users.GetByID(ctx, inA.UserID); u == nil {
		t.Fatal("user still referenced by group B was deleted")
	}
	if ok, _ := f.service.Exists(ctx, groupB, inB.ID); !ok {
		t.Error("group B membership should survive")
	}
}

func TestServiceDeleteScopedToTenant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, _ := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Anna"})

	for _, id := range []string{m.ID, testutil.MissingID, "not-an-id"} {
		if err := f.service.Delete(ctx, groupB, id); !errors.Is(err, ErrMemberNotFound) {
			t.Errorf("Delete(%q) from other tenant error = %v, want ErrMemberNotFound", id, err)
		}
	}
	if ok, _ := f.service.Exists(ctx, groupA, m.ID); !ok {
		t.Error("membership removed by another tenant")
	}
}

func TestServiceDeleteStopsOnFailure(t *testing.T) {
	// Without a gifts table the first cascade step fails
	f := newFixture(t, &group.Group{}, &user.User{}, &Membership{})
	ctx := context.Background()

	m, err := f.service.Create(ctx, groupA, &CreateMemberRequest{Name: "Anna"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := f.service.Delete(ctx, groupA, m.ID); err == nil {
		t.Fatal("Delete() should fail when gifts cannot be removed")
	}
	if ok, _ := f.service.Exists(ctx, groupA, m.ID); !ok {
		t.Error("membership deleted although an earlier step failed")
	}
	if u, _ := f.users.GetByID(ctx, m.UserID); u == nil {
		t.Error("user deleted although an earlier step failed")
	}
}
