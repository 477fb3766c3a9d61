package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
	UserIDKey   ContextKey = "user_id"
	RoleKey     ContextKey = "role"
)

var (
	ErrNoTenantInContext   = errors.New("no tenant found in context")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
)

// WithTenantID derives a context carrying the active tenant. An empty id
// clears the tenant: the derived context behaves as if none was ever set.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, TenantIDKey, tenantID)
}

// GetTenantIDFromContext returns the active tenant id. It looks at the
// explicit tenant value first, then at JWT claims placed there by the auth
// middleware. The id is not validated against the tenant collection.
func GetTenantIDFromContext(ctx context.Context) (string, error) {
	if v := ctx.Value(TenantIDKey); v != nil {
		tenantID, ok := v.(string)
		if !ok {
			return "", ErrInvalidTenantIDType
		}
		if tenantID == "" {
			return "", ErrNoTenantInContext
		}
		return tenantID, nil
	}

	claims, ok := ctx.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return "", ErrNoTenantInContext
	}
	tenantID, ok := claims[string(TenantIDKey)].(string)
	if !ok || tenantID == "" {
		return "", ErrNoTenantInContext
	}
	return tenantID, nil
}

// GetUserIDFromContext returns the authenticated user id, or "" when the
// request is anonymous.
func GetUserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(UserIDKey).(string); ok {
		return v
	}
	if claims, ok := ctx.Value(ClaimsKey).(jwt.MapClaims); ok {
		if v, ok := claims[string(UserIDKey)].(string); ok {
			return v
		}
	}
	return ""
}
