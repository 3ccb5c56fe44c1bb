// Package session gives every browser a stable session ID via cookie.
//
// The storefront uses it to key the device-local cart: a guest's cart lives
// under their session ID the same way the SPA kept it in localStorage.
//
//	r.Use(session.Middleware(session.DefaultOptions()))
//	...
//	id := session.IDFromCtx(r.Context())
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

// Options configures the session cookie.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "homegrown_session",
		TTL:        30 * 24 * time.Hour, // match the cart TTL
		HTTPOnly:   true,
		Secure:     false, // set true in production
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IDFromCtx returns the session ID stored by Middleware, or "".
func IDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Middleware ensures every request carries a session cookie, minting one for
// first-time visitors, and stores the ID in the request context.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(opts.CookieName); err == nil && c.Value != "" {
				id = c.Value
			} else {
				id = newID()
				http.SetCookie(w, &http.Cookie{
					Name:     opts.CookieName,
					Value:    id,
					Path:     opts.Path,
					Expires:  time.Now().Add(opts.TTL),
					HttpOnly: opts.HTTPOnly,
					Secure:   opts.Secure,
					SameSite: opts.SameSite,
				})
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
