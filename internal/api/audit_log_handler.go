package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	pkgutils "github.com/Nath333/multi-tenant-admin-sub001/pkg/utils"
)

type AuditLogService interface {
	Create(ctx context.Context, req dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error)
	BulkCreate(ctx context.Context, reqs []dto.CreateAuditLogRequest) error
	GetByID(ctx context.Context, id string) (*dto.AuditLogResponse, error)
	List(ctx context.Context, filter *domain.AuditLogFilter) ([]dto.AuditLogResponse, error)
	Stats(ctx context.Context, filter *domain.AuditLogFilter) (*domain.AuditLogStats, error)
}

type AuditLogHandler struct {
	*BaseHandler
	service AuditLogService
}

func NewAuditLogHandler(service AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

func (h *AuditLogHandler) CreateLog(c *gin.Context) {
	var req dto.CreateAuditLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	log, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

func (h *AuditLogHandler) BulkCreateLogs(c *gin.Context) {
	var reqs []dto.CreateAuditLogRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "empty batch"})
		return
	}

	if err := h.service.BulkCreate(h.RequestCtx(c), reqs); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": len(reqs)})
}

func (h *AuditLogHandler) GetLog(c *gin.Context) {
	log, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "audit log not found"})
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *AuditLogHandler) ListLogs(c *gin.Context) {
	filter, err := h.bindFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	logs, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *AuditLogHandler) LogStats(c *gin.Context) {
	filter, err := h.bindFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	stats, err := h.service.Stats(h.RequestCtx(c), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AuditLogHandler) bindFilter(c *gin.Context) (*domain.AuditLogFilter, error) {
	var filter domain.AuditLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return nil, err
	}
	if v := c.Query("start_time"); v != "" {
		t, err := pkgutils.ParseQueryTime(v, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := pkgutils.ParseQueryTime(v, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}
	return &filter, nil
}

func (h *AuditLogHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoTenantContext) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
}
