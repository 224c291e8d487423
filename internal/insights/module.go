// Package insights provides the reporting bounded context module. It turns
// lead snapshots into the dashboard metrics the sales team reviews.
package insights

import (
	"dealerdesk_backend/internal/automation/sla"
	apphttp "dealerdesk_backend/internal/http"
	"dealerdesk_backend/internal/insights/handler"
	"dealerdesk_backend/internal/insights/service"
	"dealerdesk_backend/platform/config"
	"dealerdesk_backend/platform/logger"
	"dealerdesk_backend/platform/validator"
)

// Module is the insights bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the insights module. The SLA thresholds
// come from the same configuration as the automation module so both report
// the same breach set.
func NewModule(cfg config.AutomationConfig, val *validator.Validator, log *logger.Logger) *Module {
	policy := sla.DefaultPolicy()
	if cfg != nil {
		if d := cfg.GetFirstContactSLA(); d > 0 {
			policy.FirstContactSLA = d
		}
		if d := cfg.GetFollowUpSLA(); d > 0 {
			policy.FollowUpSLA = d
		}
	}

	svc := service.New(sla.New(policy), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "insights"
}

// RegisterRoutes mounts insights routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/insights/dashboard", m.handler.Dashboard)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
