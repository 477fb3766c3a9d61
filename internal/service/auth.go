package service

import (
	"context"
	"time"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

// TokenIssuer is satisfied by middleware.AuthMiddleware.
type TokenIssuer interface {
	GenerateToken(userID, tenantID string, role domain.Role) (string, error)
}

// AuthService issues demo tokens for seeded users. It is mock auth: there
// is no password check, only a user lookup. The issued token carries the
// tenant id that scopes everything downstream.
type AuthService struct {
	store     *store.Store
	issuer    TokenIssuer
	expiresIn int
}

func NewAuthService(st *store.Store, issuer TokenIssuer, expiresInHours int) *AuthService {
	return &AuthService{store: st, issuer: issuer, expiresIn: expiresInHours}
}

func (s *AuthService) IssueToken(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error) {
	var users []domain.User
	if err := s.store.QueryByIndex(ctx, &domain.User{}, "id", req.UserID, &users); err != nil {
		return dto.TokenResponse{}, err
	}
	if len(users) == 0 {
		return dto.TokenResponse{}, ErrUserNotFound
	}
	user := users[0]
	if !user.Active {
		return dto.TokenResponse{}, ErrUserInactive
	}

	token, err := s.issuer.GenerateToken(user.ID, user.TenantID, user.Role)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	// Record the login in the user's tenant scope. Failures here must not
	// block the token: the login already happened.
	loginCtx := utils.WithTenantID(ctx, user.TenantID)
	if ts, err := s.store.ForTenant(loginCtx); err == nil {
		now := time.Now().UTC()
		user.LastLoginAt = &now
		_ = ts.Save(loginCtx, &user)
	}

	return dto.TokenResponse{
		Token:     token,
		TenantID:  user.TenantID,
		Role:      string(user.Role),
		ExpiresIn: s.expiresIn,
	}, nil
}
