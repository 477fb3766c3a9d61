package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
)

type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context) ([]dto.TenantResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.TenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	var (
		tenants []dto.TenantResponse
		err     error
	)
	if status := c.Query("status"); status != "" {
		tenants, err = h.service.ListByStatus(h.RequestCtx(c), status)
	} else {
		tenants, err = h.service.List(h.RequestCtx(c))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}
