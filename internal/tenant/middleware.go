package tenant

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/pkg/response"
)

// SilentHeader marks a request as a polling probe. Unauthenticated probes
// get 200 {"success":false} instead of 401 so the UI stays quiet.
const SilentHeader = "X-Auth-Silent"

// IsSilent reports whether r is a silent auth probe.
func IsSilent(r *http.Request) bool {
	v := strings.ToLower(strings.TrimSpace(r.Header.Get(SilentHeader)))
	return v == "true" || v == "1"
}

// Unauthenticated writes the failure for an unresolved tenant, honoring silent probes.
func Unauthenticated(w http.ResponseWriter, r *http.Request) {
	if IsSilent(r) {
		response.JSON(w, http.StatusOK, response.SuccessBody{Success: false})
		return
	}
	response.Unauthorized(w, "Unauthorized")
}

// Require resolves the tenant once per request and injects it into the
// context. Handlers behind it never see a request without a tenant.
func Require(resolver *Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, err := resolver.Resolve(r)
			if err != nil {
				if errors.Is(err, ErrUnauthenticated) {
					Unauthenticated(w, r)
					return
				}
				logger.Error("tenant resolution failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				response.InternalError(w, "Failed to resolve session", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}
