package httpapi

import (
	"context"
	"net/http"
	"strings"

	"campus-canteen/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is what a verified session token asserts about the caller. Order
// and transaction handlers use it instead of any client-supplied email.
type Identity struct {
	Email string
	Role  string
}

type AuthMiddleware struct {
	Auth service.AuthServiceInterface
}

func (m *AuthMiddleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		identity := Identity{Email: claims.Email, Role: claims.Role}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

func (m *AuthMiddleware) RequireManager(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		if claims.Role != service.RoleManager {
			http.Error(w, "Manager access required", http.StatusForbidden)
			return
		}
		identity := Identity{Email: claims.Email, Role: claims.Role}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*service.Claims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		http.Error(w, "Access denied. No token provided", http.StatusUnauthorized)
		return nil, false
	}
	claims, err := m.Auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

func withIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
