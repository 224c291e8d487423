// Package handler exposes the insights API over HTTP.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	autotransport "dealerdesk_backend/internal/automation/transport"
	"dealerdesk_backend/internal/insights/service"
	"dealerdesk_backend/internal/insights/transport"
	"dealerdesk_backend/platform/apperr"
	"dealerdesk_backend/platform/httpkit"
	"dealerdesk_backend/platform/validator"
)

// Handler handles HTTP requests for insights.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new insights handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Dashboard computes dashboard metrics for a lead snapshot.
// POST /api/v1/insights/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	var req transport.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	metrics := h.svc.Dashboard(
		autotransport.LeadsToDomain(req.Leads),
		autotransport.OwnersToDomain(req.Owners),
		now, req.From, req.To,
	)
	httpkit.OK(c, metrics)
}
