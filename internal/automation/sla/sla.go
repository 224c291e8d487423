// Package sla evaluates response-time service levels for leads.
package sla

import (
	"time"

	"dealerdesk_backend/internal/leads/domain"
)

// Policy holds the tunable response-time thresholds.
type Policy struct {
	// FirstContactSLA is the allowed time from creation to first contact
	// for leads still in New.
	FirstContactSLA time.Duration
	// FollowUpSLA is the allowed time since last contact for leads that
	// have progressed past New.
	FollowUpSLA time.Duration
}

// DefaultPolicy returns the production thresholds: 15 minutes to first
// contact, 24 hours between follow-ups.
func DefaultPolicy() Policy {
	return Policy{
		FirstContactSLA: 15 * time.Minute,
		FollowUpSLA:     24 * time.Hour,
	}
}

// Monitor checks leads against the SLA policy. It is stateless and safe for
// concurrent use.
type Monitor struct {
	policy Policy
}

// New creates a monitor with the given policy.
func New(policy Policy) *Monitor {
	return &Monitor{policy: policy}
}

// IsBreached reports whether the lead has breached its response SLA at the
// given reference time.
//
// New leads breach when the first-contact window has elapsed and no contact
// was ever logged; a New lead that somehow carries a LastContactAt (e.g.
// re-opened from a later stage) is never flagged here. Leads past New breach
// when the follow-up window since LastContactAt has elapsed. A non-New lead
// with no LastContactAt reports no breach: there is no timestamp to measure
// staleness against.
func (m *Monitor) IsBreached(lead domain.Lead, now time.Time) bool {
	if lead.Status == domain.StatusNew {
		return lead.LastContactAt == nil && now.Sub(lead.CreatedAt) > m.policy.FirstContactSLA
	}

	if lead.LastContactAt != nil {
		return now.Sub(*lead.LastContactAt) > m.policy.FollowUpSLA
	}

	return false
}

// Breaches returns the subset of leads in breach at the reference time,
// preserving input order.
func (m *Monitor) Breaches(leads []domain.Lead, now time.Time) []domain.Lead {
	var breached []domain.Lead
	for _, lead := range leads {
		if m.IsBreached(lead, now) {
			breached = append(breached, lead)
		}
	}
	return breached
}
