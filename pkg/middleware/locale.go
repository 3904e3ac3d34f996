package middleware

import (
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/i18n"
	"github.com/fkhayef/giftbox/pkg/session"
)

// ProtectedPrefix is the area that needs a valid session, after any locale segment.
const ProtectedPrefix = "/dashboard"

// PublicRoot is where visitors without a valid session are sent.
const PublicRoot = "/"

// skippedPrefixes never get locale handling
var skippedPrefixes = []string{"/api/", "/static/", "/swagger/"}

// skippedPaths are exact paths that never get locale handling
var skippedPaths = map[string]bool{
	"/api":     true,
	"/metrics": true,
	"/health":  true,
}

// TokenVerifier checks a session token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Locale guards the protected area and keeps page URLs locale-prefixed.
//
// For page requests it:
//  1. sends requests for the protected area without a valid session to PublicRoot,
//     clearing the session cookie when a token was present but failed verification;
//  2. passes through when the path has a locale segment;
//  3. otherwise redirects to the same path under the resolved locale.
//
// The locale cookie is refreshed on every page response.
//
// API, static, docs and asset requests pass through untouched.
func Locale(tokens TokenVerifier, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if skipLocale(p) {
				next.ServeHTTP(w, r)
				return
			}

			locale, rest := i18n.SplitPath(p)
			prefixed := locale != ""
			if !prefixed {
				locale = i18n.Resolve(r)
			}
			// The locale cookie follows every page response, redirects included
			i18n.SetCookie(w, locale)

			if isProtected(rest) {
				token := session.FromRequest(r)
				if token == "" {
					http.Redirect(w, r, PublicRoot, http.StatusTemporaryRedirect)
					return
				}
				if _, err := tokens.Verify(token); err != nil {
					logger.Debug("rejected session on protected page",
						zap.String("path", p),
						zap.Error(err))
					session.ClearCookie(w, secure)
					http.Redirect(w, r, PublicRoot, http.StatusTemporaryRedirect)
					return
				}
			}

			if prefixed {
				next.ServeHTTP(w, r)
				return
			}

			http.Redirect(w, r, localized(locale, r), http.StatusTemporaryRedirect)
		})
	}
}

// localized builds the redirect target for r under locale, keeping the query.
func localized(locale string, r *http.Request) string {
	target := "/" + locale
	if r.URL.Path != "/" {
		target += r.URL.Path
	}
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return target
}

func isProtected(p string) bool {
	return p == ProtectedPrefix || strings.HasPrefix(p, ProtectedPrefix+"/")
}

func skipLocale(p string) bool {
	if skippedPaths[p] {
		return true
	}
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	// Files such as /favicon.ico or /robots.txt
	return strings.Contains(path.Base(p), ".")
}
