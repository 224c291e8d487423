// Package transport defines the request and response shapes of the
// insights API. Lead and owner snapshots share the automation transport
// shape so callers submit one payload format across the service.
package transport

import (
	"time"

	autotransport "dealerdesk_backend/internal/automation/transport"

	"github.com/google/uuid"
)

// Snapshot payload shapes shared with the automation API.
type (
	LeadPayload  = autotransport.LeadPayload
	OwnerPayload = autotransport.OwnerPayload
)

// DashboardRequest asks for dashboard metrics over a lead snapshot.
type DashboardRequest struct {
	Leads  []LeadPayload  `json:"leads" validate:"omitempty,dive"`
	Owners []OwnerPayload `json:"owners" validate:"omitempty,dive"`
	Now    *time.Time     `json:"now,omitempty"`
	From   *time.Time     `json:"from,omitempty"`
	To     *time.Time     `json:"to,omitempty"`
}

// OwnerPerformance summarizes one Sales Executive's funnel contribution.
type OwnerPerformance struct {
	OwnerID          uuid.UUID `json:"ownerId"`
	OwnerName        string    `json:"ownerName"`
	Calls            int       `json:"calls"`
	FirstContactRate int       `json:"firstContactRate"`
	QualifiedRate    int       `json:"qualifiedRate"`
	WonCount         int       `json:"wonCount"`
}

// DashboardMetrics is the computed dashboard snapshot.
type DashboardMetrics struct {
	LeadsToday                  int                `json:"leadsToday"`
	FirstContactUnder15m        int                `json:"firstContactUnder15m"`
	FirstContactUnder15mPercent int                `json:"firstContactUnder15mPercent"`
	QualifiedPercent            int                `json:"qualifiedPercent"`
	WonCount                    int                `json:"wonCount"`
	SLABreachCount              int                `json:"slaBreachCount"`
	ChannelMix                  map[string]int     `json:"channelMix"`
	StatusFunnel                map[string]int     `json:"statusFunnel"`
	OwnerPerformance            []OwnerPerformance `json:"ownerPerformance"`
}
