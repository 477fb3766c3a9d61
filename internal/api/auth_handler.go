package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
)

type AuthService interface {
	IssueToken(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken returns a demo JWT for a seeded user. There is no password
// check; this endpoint stands in for a real identity provider.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.IssueToken(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrUserInactive) {
			c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
