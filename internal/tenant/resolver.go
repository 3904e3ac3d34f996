// Package tenant turns the session cookie of a request into the group the
// caller is allowed to act for. It is the only place handlers learn their
// tenant; nothing is cached between requests.
package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/fkhayef/giftbox/internal/group"
	"github.com/fkhayef/giftbox/pkg/session"
)

// ErrUnauthenticated covers every reason a request has no tenant:
// missing cookie, bad or expired token, unknown group.
var ErrUnauthenticated = errors.New("unauthenticated")

// TokenVerifier checks a session token and returns the group name claim.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// GroupFinder looks a group up by name, returning (nil, nil) when absent.
type GroupFinder interface {
	GetByName(ctx context.Context, name string) (*group.Group, error)
}

// Tenant is the resolved caller identity.
type Tenant struct {
	GroupID   string
	GroupName string
}

// Resolver resolves requests to tenants.
type Resolver struct {
	tokens TokenVerifier
	groups GroupFinder
}

// NewResolver creates a resolver.
func NewResolver(tokens TokenVerifier, groups GroupFinder) *Resolver {
	return &Resolver{tokens: tokens, groups: groups}
}

// Resolve reads the session cookie, verifies it and looks up the group.
// It returns ErrUnauthenticated when any step fails; other errors are store faults.
func (r *Resolver) Resolve(req *http.Request) (*Tenant, error) {
	token := session.FromRequest(req)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	name, err := r.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	g, err := r.groups.GetByName(req.Context(), name)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrUnauthenticated
	}

	return &Tenant{GroupID: g.ID, GroupName: g.Name}, nil
}

type ctxKey struct{}

// WithTenant returns a copy of ctx carrying t.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the tenant placed by Require.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(ctxKey{}).(*Tenant)
	return t, ok && t != nil
}
