package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

type BillingService interface {
	Overview(ctx context.Context) (dto.BillingResponse, error)
	RecordUsage(ctx context.Context, metric string, value float64) error
}

type BillingHandler struct {
	*BaseHandler
	service BillingService
}

func NewBillingHandler(service BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) BillingOverview(c *gin.Context) {
	overview, err := h.service.Overview(h.RequestCtx(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *BillingHandler) RecordUsage(c *gin.Context) {
	var req dto.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	if err := h.service.RecordUsage(h.RequestCtx(c), req.Metric, req.Value); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recorded": req.Metric})
}

func (h *BillingHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoTenantContext) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
}
