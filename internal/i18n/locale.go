// Package i18n holds the supported UI locales, the per-request locale
// resolution and the embedded translation dictionaries.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// CookieName is the cookie remembering the visitor's locale.
const CookieName = "NEXT_LOCALE"

// CookieMaxAge is the sliding lifetime of the locale cookie.
const CookieMaxAge = 365 * 24 * time.Hour

// Default is used when neither cookie nor Accept-Language names a supported locale.
const Default = "en"

// Supported lists the locale codes in display order.
var Supported = []string{"en", "ru", "de"}

// IsSupported reports whether code is one of Supported.
func IsSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

// Resolve picks the request locale: a supported cookie value first, then the
// first supported language in Accept-Language preference order, then Default.
func Resolve(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && IsSupported(c.Value) {
		return c.Value
	}
	if code, ok := negotiate(r.Header.Get("Accept-Language")); ok {
		return code
	}
	return Default
}

// negotiate walks the Accept-Language list by descending quality and returns
// the first tag whose base language is supported.
func negotiate(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); IsSupported(code) {
			return code, true
		}
	}
	return "", false
}

// SplitPath separates a leading supported locale segment from path.
// "/ru/dashboard" yields ("ru", "/dashboard"); "/dashboard" yields ("", "/dashboard").
func SplitPath(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, found := strings.Cut(trimmed, "/")
	if !IsSupported(segment) {
		return "", path
	}
	if !found {
		return segment, "/"
	}
	return segment, "/" + rest
}

// SetCookie stores code in the locale cookie. It stays readable by scripts
// so the client can switch languages itself.
func SetCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
