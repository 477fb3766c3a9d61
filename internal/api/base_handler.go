package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

type BaseHandler struct{}

// RequestCtx copies the auth keys set by middleware from the gin context
// into the request context, so services and the store see the tenant
// without knowing about gin.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
