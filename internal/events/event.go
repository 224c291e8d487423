// Package events provides domain event definitions for decoupled
// communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"dealerdesk_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// LeadEnriched is published after an inbound lead has been normalized,
// geo-tagged and scored.
type LeadEnriched struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	City         string    `json:"city"`
	InferredCity bool      `json:"inferredCity"`
	Score        int       `json:"score"`
	Channel      string    `json:"channel"`
}

func (e LeadEnriched) EventName() string { return "automation.lead.enriched" }

// LeadAssigned is published when the balancer picks an owner for a lead.
type LeadAssigned struct {
	BaseEvent
	LeadID  uuid.UUID `json:"leadId"`
	OwnerID uuid.UUID `json:"ownerId"`
	City    string    `json:"city"`
}

func (e LeadAssigned) EventName() string { return "automation.lead.assigned" }

// DuplicatesFlagged is published when duplicate detection finds probable
// matches for a candidate lead.
type DuplicatesFlagged struct {
	BaseEvent
	LeadID       uuid.UUID   `json:"leadId"`
	DuplicateIDs []uuid.UUID `json:"duplicateIds"`
}

func (e DuplicatesFlagged) EventName() string { return "automation.lead.duplicates_flagged" }

// SLABreachDetected is published for each lead found in breach during an
// SLA sweep.
type SLABreachDetected struct {
	BaseEvent
	LeadID    uuid.UUID  `json:"leadId"`
	OwnerID   *uuid.UUID `json:"ownerId,omitempty"`
	Status    string     `json:"status"`
	OverdueBy string     `json:"overdueBy"`
}

func (e SLABreachDetected) EventName() string { return "automation.sla.breach_detected" }
