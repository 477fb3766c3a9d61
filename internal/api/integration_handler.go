package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

type IntegrationService interface {
	CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest) (dto.APIKeyResponse, error)
	ListAPIKeys(ctx context.Context) ([]dto.APIKeyResponse, error)
	CreateWebhook(ctx context.Context, req dto.CreateWebhookRequest) (*domain.Webhook, error)
	ListWebhooks(ctx context.Context) ([]domain.Webhook, error)
}

type IntegrationHandler struct {
	*BaseHandler
	service IntegrationService
}

func NewIntegrationHandler(service IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

// CreateAPIKey returns the plaintext key exactly once; only the hash is
// stored.
func (h *IntegrationHandler) CreateAPIKey(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	key, err := h.service.CreateAPIKey(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, key)
}

func (h *IntegrationHandler) ListAPIKeys(c *gin.Context) {
	keys, err := h.service.ListAPIKeys(h.RequestCtx(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

func (h *IntegrationHandler) CreateWebhook(c *gin.Context) {
	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	webhook, err := h.service.CreateWebhook(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, webhook)
}

func (h *IntegrationHandler) ListWebhooks(c *gin.Context) {
	webhooks, err := h.service.ListWebhooks(h.RequestCtx(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, webhooks)
}

func (h *IntegrationHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoTenantContext) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
}
