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

type DeviceService interface {
	Register(ctx context.Context, req dto.CreateDeviceRequest) (dto.DeviceResponse, error)
	GetByID(ctx context.Context, id string) (dto.DeviceResponse, error)
	List(ctx context.Context, filter domain.DeviceFilter) ([]dto.DeviceResponse, error)
	Heartbeat(ctx context.Context, id string, req dto.DeviceHeartbeatRequest) (dto.DeviceResponse, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type DeviceHandler struct {
	*BaseHandler
	service DeviceService
}

func NewDeviceHandler(service DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	device, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, device)
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	var filter domain.DeviceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	devices, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) Heartbeat(c *gin.Context) {
	var req dto.DeviceHeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	device, err := h.service.Heartbeat(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) DeviceStatusSummary(c *gin.Context) {
	counts, err := h.service.CountByStatus(h.RequestCtx(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *DeviceHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoTenantContext):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidDeviceStatus):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
