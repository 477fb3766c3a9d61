package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/middleware"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service/pubsub"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

type Server struct {
	authHandler *AuthHandler
	tenant      *TenantHandler
	device      *DeviceHandler
	auditLog    *AuditLogHandler
	dashboard   *DashboardHandler
	billing     *BillingHandler
	integration *IntegrationHandler
	websocket   *WebSocketHandler
	auth        *middleware.AuthMiddleware
	validation  *middleware.ValidationMiddleware
}

func NewServer(
	authService *service.AuthService,
	tenantService *service.TenantService,
	deviceService *service.DeviceService,
	auditLogService *service.AuditLogService,
	dashboardService *service.DashboardService,
	billingService *service.BillingService,
	integrationService *service.IntegrationService,
	auth *middleware.AuthMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	broker *pubsub.Broker,
) *Server {
	return &Server{
		authHandler: NewAuthHandler(authService),
		tenant:      NewTenantHandler(tenantService),
		device:      NewDeviceHandler(deviceService),
		auditLog:    NewAuditLogHandler(auditLogService),
		dashboard:   NewDashboardHandler(dashboardService),
		billing:     NewBillingHandler(billingService),
		integration: NewIntegrationHandler(integrationService),
		websocket:   NewWebSocketHandler(broker, logger),
		auth:        auth,
		validation:  validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024))
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	api.POST("/auth/token", s.authHandler.IssueToken)

	{
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.auth.RequireRole(domain.RoleAdmin))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
		}

		devices := api.Group("/devices", s.auth.JWTAuth())
		{
			devices.POST("", s.auth.RequireRole(domain.RoleAdmin, domain.RoleOperator), s.device.RegisterDevice)
			devices.GET("", s.device.ListDevices)
			devices.GET("/summary", s.device.DeviceStatusSummary)
			devices.GET("/:id", s.device.GetDevice)
			devices.POST("/:id/heartbeat", s.auth.RequireRole(domain.RoleAdmin, domain.RoleOperator), s.device.Heartbeat)
		}

		logs := api.Group("/logs", s.auth.JWTAuth())
		{
			logs.POST("", s.auditLog.CreateLog)
			logs.GET("", s.auditLog.ListLogs)
			logs.GET("/stats", s.auditLog.LogStats)
			logs.POST("/bulk", s.auditLog.BulkCreateLogs)
			logs.GET("/stream", s.websocket.HandleWebSocket)
			logs.GET("/:id", s.auditLog.GetLog)
		}

		dashboards := api.Group("/dashboards", s.auth.JWTAuth())
		{
			dashboards.POST("", s.dashboard.CreateDashboard)
			dashboards.GET("", s.dashboard.ListDashboards)
			dashboards.GET("/:id", s.dashboard.GetDashboard)
		}

		billing := api.Group("/billing", s.auth.JWTAuth())
		{
			billing.GET("", s.billing.BillingOverview)
			billing.POST("/usage", s.auth.RequireRole(domain.RoleAdmin, domain.RoleOperator), s.billing.RecordUsage)
		}

		integrations := api.Group("/integrations", s.auth.JWTAuth(), s.auth.RequireRole(domain.RoleAdmin))
		{
			integrations.POST("/keys", s.integration.CreateAPIKey)
			integrations.GET("/keys", s.integration.ListAPIKeys)
			integrations.POST("/webhooks", s.integration.CreateWebhook)
			integrations.GET("/webhooks", s.integration.ListWebhooks)
		}
	}
}

// StartWebSocketHub starts the hub that fans broker messages out to
// connected stream clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
