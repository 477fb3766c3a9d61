package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

type DashboardService interface {
	Create(ctx context.Context, req dto.CreateDashboardRequest) (*domain.Dashboard, error)
	GetByID(ctx context.Context, id string) (*domain.Dashboard, error)
	List(ctx context.Context) ([]domain.Dashboard, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) CreateDashboard(c *gin.Context) {
	var req dto.CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	dashboard, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dashboard)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) ListDashboards(c *gin.Context) {
	dashboards, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboards)
}

func (h *DashboardHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoTenantContext):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidWidgetType):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrDashboardNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
