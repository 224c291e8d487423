// Package transport defines the request and response shapes of the
// automation API. Snapshot payloads are normalized into domain values here;
// unknown enum text defaults rather than rejects.
package transport

import (
	"time"

	"dealerdesk_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// LeadPayload is a point-in-time lead snapshot supplied by the caller.
type LeadPayload struct {
	ID             uuid.UUID  `json:"id" validate:"required"`
	Name           string     `json:"name" validate:"required,min=1,max=200"`
	Phone          string     `json:"phone" validate:"required,min=2,max=20"`
	Email          string     `json:"email,omitempty" validate:"omitempty,email"`
	City           string     `json:"city,omitempty" validate:"omitempty,max=100"`
	PreferredModel string     `json:"preferredModel,omitempty" validate:"omitempty,max=100"`
	BudgetRange    string     `json:"budgetRange,omitempty" validate:"omitempty,max=100"`
	Channel        string     `json:"channel,omitempty" validate:"omitempty,max=30"`
	Owner          *uuid.UUID `json:"owner,omitempty"`
	Status         string     `json:"status,omitempty" validate:"omitempty,max=40"`
	Priority       string     `json:"priority,omitempty" validate:"omitempty,max=20"`
	Score          int        `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	CreatedAt      time.Time  `json:"createdAt" validate:"required"`
	LastContactAt  *time.Time `json:"lastContactAt,omitempty"`
	NextActionAt   *time.Time `json:"nextActionAt,omitempty"`
	Timezone       string     `json:"timezone,omitempty" validate:"omitempty,max=60"`
	IsRepeatLead   bool       `json:"isRepeatLead,omitempty"`
}

// ToDomain converts the payload to a domain lead, normalizing free-text enum
// values to their canonical forms.
func (p LeadPayload) ToDomain() domain.Lead {
	return domain.Lead{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		City:           p.City,
		PreferredModel: p.PreferredModel,
		BudgetRange:    p.BudgetRange,
		Channel:        domain.ParseChannel(p.Channel),
		Owner:          p.Owner,
		Status:         domain.ParseStatus(p.Status),
		Priority:       domain.ParsePriority(p.Priority),
		Score:          p.Score,
		CreatedAt:      p.CreatedAt,
		LastContactAt:  p.LastContactAt,
		NextActionAt:   p.NextActionAt,
		Timezone:       p.Timezone,
		IsRepeatLead:   p.IsRepeatLead,
	}
}

// OwnerPayload is a sales team member supplied with assignment requests.
type OwnerPayload struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=1,max=200"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Role      string    `json:"role" validate:"required,max=40"`
	City      string    `json:"city,omitempty" validate:"omitempty,max=100"`
	Expertise []string  `json:"expertise,omitempty" validate:"omitempty,dive,max=100"`
}

// ToDomain converts the payload to a domain owner.
func (p OwnerPayload) ToDomain() domain.Owner {
	return domain.Owner{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      domain.OwnerRole(p.Role),
		City:      p.City,
		Expertise: p.Expertise,
	}
}

// LeadsToDomain converts a slice of payloads.
func LeadsToDomain(payloads []LeadPayload) []domain.Lead {
	leads := make([]domain.Lead, len(payloads))
	for i, p := range payloads {
		leads[i] = p.ToDomain()
	}
	return leads
}

// OwnersToDomain converts a slice of payloads.
func OwnersToDomain(payloads []OwnerPayload) []domain.Owner {
	owners := make([]domain.Owner, len(payloads))
	for i, p := range payloads {
		owners[i] = p.ToDomain()
	}
	return owners
}

// EnrichLeadRequest asks for a lead snapshot to be normalized and scored.
type EnrichLeadRequest struct {
	Lead LeadPayload `json:"lead" validate:"required"`
	Now  *time.Time  `json:"now,omitempty"`
}

// EnrichLeadResponse carries the enriched lead plus advisory contact hints.
type EnrichLeadResponse struct {
	Lead       domain.Lead `json:"lead"`
	PhoneE164  string      `json:"phoneE164,omitempty"`
	CallWindow string      `json:"callWindow"`
}

// ScoreLeadRequest asks for a lead's quality score.
type ScoreLeadRequest struct {
	Lead LeadPayload `json:"lead" validate:"required"`
}

// ScoreLeadResponse carries the computed score.
type ScoreLeadResponse struct {
	Score int `json:"score"`
}

// SLACheckRequest asks whether a single lead is in breach.
type SLACheckRequest struct {
	Lead LeadPayload `json:"lead" validate:"required"`
	Now  *time.Time  `json:"now,omitempty"`
}

// SLACheckResponse reports the breach verdict.
type SLACheckResponse struct {
	Breached bool `json:"breached"`
}

// SLAReportRequest asks for the breached subset of a lead pool.
type SLAReportRequest struct {
	Leads []LeadPayload `json:"leads" validate:"required,dive"`
	Now   *time.Time    `json:"now,omitempty"`
}

// SLAReportResponse lists the IDs of leads in breach, in input order.
type SLAReportResponse struct {
	BreachedIDs []uuid.UUID `json:"breachedIds"`
}

// DuplicatesRequest asks for probable duplicates of a candidate lead.
type DuplicatesRequest struct {
	Lead LeadPayload   `json:"lead" validate:"required"`
	Pool []LeadPayload `json:"pool" validate:"omitempty,dive"`
	Now  *time.Time    `json:"now,omitempty"`
}

// DuplicatesResponse lists the IDs of probable duplicates.
type DuplicatesResponse struct {
	DuplicateIDs []uuid.UUID `json:"duplicateIds"`
}

// AssignRequest asks the balancer to pick an owner for a lead.
type AssignRequest struct {
	Lead   LeadPayload    `json:"lead" validate:"required"`
	Pool   []LeadPayload  `json:"pool" validate:"omitempty,dive"`
	Owners []OwnerPayload `json:"owners" validate:"omitempty,dive"`
}

// AssignResponse carries the chosen owner, or null when no Sales Executive
// is available.
type AssignResponse struct {
	OwnerID *uuid.UUID `json:"ownerId"`
}

// CityResponse carries a locale lookup result.
type CityResponse struct {
	City string `json:"city"`
}

// CallWindowResponse carries the suggested outbound-call window.
type CallWindowResponse struct {
	Window string `json:"window"`
}
