// Package handler exposes the lead automation engine over HTTP.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dealerdesk_backend/internal/automation/service"
	"dealerdesk_backend/internal/automation/transport"
	"dealerdesk_backend/platform/apperr"
	"dealerdesk_backend/platform/httpkit"
	"dealerdesk_backend/platform/phone"
	"dealerdesk_backend/platform/validator"
)

// Handler handles HTTP requests for lead automation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new automation handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Enrich normalizes and scores an inbound lead snapshot.
// POST /api/v1/automation/leads/enrich
func (h *Handler) Enrich(c *gin.Context) {
	var req transport.EnrichLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	lead := h.svc.Enrich(c.Request.Context(), req.Lead.ToDomain(), refTime(req.Now))
	httpkit.OK(c, transport.EnrichLeadResponse{
		Lead:       lead,
		PhoneE164:  phone.NormalizeE164(lead.Phone),
		CallWindow: h.svc.CallWindowFor(lead.City),
	})
}

// Score computes a lead's quality score.
// POST /api/v1/automation/leads/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.ScoreLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	httpkit.OK(c, transport.ScoreLeadResponse{Score: h.svc.Score(req.Lead.ToDomain())})
}

// SLACheck reports whether a single lead has breached its response SLA.
// POST /api/v1/automation/leads/sla-check
func (h *Handler) SLACheck(c *gin.Context) {
	var req transport.SLACheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	breached := h.svc.CheckSLA(req.Lead.ToDomain(), refTime(req.Now))
	httpkit.OK(c, transport.SLACheckResponse{Breached: breached})
}

// SLAReport returns the breached subset of a lead pool.
// POST /api/v1/automation/leads/sla-report
func (h *Handler) SLAReport(c *gin.Context) {
	var req transport.SLAReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	breached := h.svc.SLAReport(c.Request.Context(), transport.LeadsToDomain(req.Leads), refTime(req.Now))
	ids := make([]uuid.UUID, len(breached))
	for i, lead := range breached {
		ids[i] = lead.ID
	}
	httpkit.OK(c, transport.SLAReportResponse{BreachedIDs: ids})
}

// Duplicates returns probable duplicates of a candidate within a pool.
// POST /api/v1/automation/leads/duplicates
func (h *Handler) Duplicates(c *gin.Context) {
	var req transport.DuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	duplicates := h.svc.FindDuplicates(c.Request.Context(),
		req.Lead.ToDomain(), transport.LeadsToDomain(req.Pool), refTime(req.Now))
	if duplicates == nil {
		duplicates = []uuid.UUID{}
	}
	httpkit.OK(c, transport.DuplicatesResponse{DuplicateIDs: duplicates})
}

// Assign picks the sales owner for a new lead.
// POST /api/v1/automation/leads/assign
func (h *Handler) Assign(c *gin.Context) {
	var req transport.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	ownerID := h.svc.Assign(c.Request.Context(),
		req.Lead.ToDomain(), transport.LeadsToDomain(req.Pool), transport.OwnersToDomain(req.Owners))
	httpkit.OK(c, transport.AssignResponse{OwnerID: ownerID})
}

// City resolves a phone number's likely city.
// GET /api/v1/automation/locale/city?phone=
func (h *Handler) City(c *gin.Context) {
	number := c.Query("phone")
	if number == "" {
		httpkit.HandleError(c, apperr.BadRequest("phone is required"))
		return
	}
	httpkit.OK(c, transport.CityResponse{City: h.svc.CityFromPhone(number)})
}

// CallWindow returns the suggested outbound-call window for a city.
// GET /api/v1/automation/locale/call-window?city=
func (h *Handler) CallWindow(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		httpkit.HandleError(c, apperr.BadRequest("city is required"))
		return
	}
	httpkit.OK(c, transport.CallWindowResponse{Window: h.svc.CallWindowFor(city)})
}

// refTime returns the caller-supplied reference time, defaulting to the
// current UTC time.
func refTime(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now().UTC()
}
