// Package automation provides the lead automation bounded context module.
// It wires the enrichment, scoring, SLA, duplicate-detection, assignment and
// locale engines behind the HTTP API.
package automation

import (
	"dealerdesk_backend/internal/automation/handler"
	"dealerdesk_backend/internal/automation/service"
	"dealerdesk_backend/internal/events"
	apphttp "dealerdesk_backend/internal/http"
	"dealerdesk_backend/platform/config"
	"dealerdesk_backend/platform/logger"
	"dealerdesk_backend/platform/validator"
)

// Module is the automation bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the automation module with all its
// dependencies.
func NewModule(cfg config.AutomationConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(cfg, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "automation"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts automation routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leads := ctx.V1.Group("/automation/leads")
	leads.POST("/enrich", m.handler.Enrich)
	leads.POST("/score", m.handler.Score)
	leads.POST("/sla-check", m.handler.SLACheck)
	leads.POST("/sla-report", m.handler.SLAReport)
	leads.POST("/duplicates", m.handler.Duplicates)
	leads.POST("/assign", m.handler.Assign)

	loc := ctx.V1.Group("/automation/locale")
	loc.GET("/city", m.handler.City)
	loc.GET("/call-window", m.handler.CallWindow)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
