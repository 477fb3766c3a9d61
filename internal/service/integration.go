package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

// IntegrationService manages API keys and webhooks for a tenant.
type IntegrationService struct {
	store *store.Store
}

func NewIntegrationService(st *store.Store) *IntegrationService {
	return &IntegrationService{store: st}
}

func (s *IntegrationService) CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest) (dto.APIKeyResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return dto.APIKeyResponse{}, err
	}

	secret, prefix, err := newKeyMaterial()
	if err != nil {
		return dto.APIKeyResponse{}, err
	}

	rateLimit := req.RateLimit
	if rateLimit == 0 {
		rateLimit = 1000
	}

	hash := sha256.Sum256([]byte(secret))
	key := &domain.APIKey{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Prefix:    prefix,
		KeyHash:   hex.EncodeToString(hash[:]),
		RateLimit: rateLimit,
		Status:    domain.APIKeyStatusActive,
		Scopes:    req.Scopes,
		ExpiresAt: req.ExpiresAt,
	}
	if err := ts.Insert(ctx, key); err != nil {
		return dto.APIKeyResponse{}, err
	}

	resp := dto.FromAPIKey(key)
	resp.Key = secret
	return resp, nil
}

func (s *IntegrationService) ListAPIKeys(ctx context.Context) ([]dto.APIKeyResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	var keys []domain.APIKey
	if err := ts.Find(ctx, &domain.APIKey{}, &keys); err != nil {
		return nil, err
	}
	return dto.FromAPIKeys(keys), nil
}

func (s *IntegrationService) CreateWebhook(ctx context.Context, req dto.CreateWebhookRequest) (*domain.Webhook, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	webhook := &domain.Webhook{
		ID:     uuid.New().String(),
		URL:    req.URL,
		Events: req.Events,
		Secret: req.Secret,
		Active: true,
	}
	if err := ts.Insert(ctx, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

func (s *IntegrationService) ListWebhooks(ctx context.Context) ([]domain.Webhook, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	var webhooks []domain.Webhook
	if err := ts.Find(ctx, &domain.Webhook{}, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// newKeyMaterial returns the plaintext secret and its public prefix.
func newKeyMaterial() (secret, prefix string, err error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate api key: %w", err)
	}
	secret = "ak_" + hex.EncodeToString(raw)
	return secret, secret[:11], nil
}
