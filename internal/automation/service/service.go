// Package service provides the lead automation facade. It composes the
// scoring, SLA, duplicate, assignment and locale engines behind a single
// API and publishes domain events for each decision.
package service

import (
	"context"
	"time"

	"dealerdesk_backend/internal/automation/assign"
	"dealerdesk_backend/internal/automation/dedup"
	"dealerdesk_backend/internal/automation/locale"
	"dealerdesk_backend/internal/automation/scoring"
	"dealerdesk_backend/internal/automation/sla"
	"dealerdesk_backend/internal/events"
	"dealerdesk_backend/internal/leads/domain"
	"dealerdesk_backend/platform/config"
	"dealerdesk_backend/platform/logger"

	"github.com/google/uuid"
)

const defaultTimezone = "Asia/Kolkata"

// Service is the automation facade. All operations are pure over their
// inputs: leads are passed by value and decisions are returned, never
// applied to shared state. Safe for concurrent use.
type Service struct {
	scorer   *scoring.Scorer
	monitor  *sla.Monitor
	detector *dedup.Detector
	balancer *assign.Balancer
	resolver *locale.Resolver
	bus      events.Bus
	log      *logger.Logger
}

// New creates the facade with engine policies derived from configuration.
// Zero-valued config fields keep the engine defaults. A nil bus disables
// event publishing.
func New(cfg config.AutomationConfig, bus events.Bus, log *logger.Logger) *Service {
	slaPolicy := sla.DefaultPolicy()
	dedupPolicy := dedup.DefaultPolicy()

	if cfg != nil {
		if d := cfg.GetFirstContactSLA(); d > 0 {
			slaPolicy.FirstContactSLA = d
		}
		if d := cfg.GetFollowUpSLA(); d > 0 {
			slaPolicy.FollowUpSLA = d
		}
		if d := cfg.GetDuplicateWindow(); d > 0 {
			dedupPolicy.RecencyWindow = d
		}
		if t := cfg.GetNameSimilarityThreshold(); t > 0 {
			dedupPolicy.NameSimilarityThreshold = t
		}
	}

	return &Service{
		scorer:   scoring.New(scoring.DefaultPolicy()),
		monitor:  sla.New(slaPolicy),
		detector: dedup.New(dedupPolicy),
		balancer: assign.New(),
		resolver: locale.New(locale.DefaultPolicy()),
		bus:      bus,
		log:      log,
	}
}

// Enrich normalizes an inbound lead snapshot: infers the city from the phone
// when it is missing or unresolved, defaults the timezone, and recomputes the
// score. The input is never mutated; the enriched copy is returned.
func (s *Service) Enrich(ctx context.Context, lead domain.Lead, now time.Time) domain.Lead {
	inferredCity := false
	if lead.City == "" || lead.City == "Other" {
		lead.City = s.resolver.CityFromPhone(lead.Phone)
		inferredCity = true
	}
	if lead.Timezone == "" {
		lead.Timezone = defaultTimezone
	}
	lead.Score = s.scorer.Score(lead)

	if s.log != nil {
		s.log.AutomationDecision("enrich", lead.ID.String(),
			"city", lead.City,
			"inferred_city", inferredCity,
			"score", lead.Score,
		)
	}
	s.publish(ctx, events.LeadEnriched{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       lead.ID,
		City:         lead.City,
		InferredCity: inferredCity,
		Score:        lead.Score,
		Channel:      string(lead.Channel),
	})

	return lead
}

// Score computes the lead's quality score without any side effects.
func (s *Service) Score(lead domain.Lead) int {
	return s.scorer.Score(lead)
}

// CheckSLA reports whether a single lead is in breach at the reference time.
func (s *Service) CheckSLA(lead domain.Lead, now time.Time) bool {
	return s.monitor.IsBreached(lead, now)
}

// SLAReport returns the leads in breach at the reference time, preserving
// input order, and publishes a breach event per offending lead.
func (s *Service) SLAReport(ctx context.Context, leads []domain.Lead, now time.Time) []domain.Lead {
	breached := s.monitor.Breaches(leads, now)
	for _, lead := range breached {
		if s.log != nil {
			s.log.AutomationDecision("sla_breach", lead.ID.String(), "status", string(lead.Status))
		}
		s.publish(ctx, events.SLABreachDetected{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			OwnerID:   lead.Owner,
			Status:    string(lead.Status),
			OverdueBy: overdueBy(lead, now),
		})
	}
	return breached
}

// FindDuplicates returns the IDs of pool leads that probably duplicate the
// candidate, publishing a flag event when any are found.
func (s *Service) FindDuplicates(ctx context.Context, candidate domain.Lead, pool []domain.Lead, now time.Time) []uuid.UUID {
	duplicates := s.detector.FindDuplicates(candidate, pool, now)
	if len(duplicates) > 0 {
		if s.log != nil {
			s.log.AutomationDecision("duplicates_flagged", candidate.ID.String(), "count", len(duplicates))
		}
		s.publish(ctx, events.DuplicatesFlagged{
			BaseEvent:    events.NewBaseEvent(),
			LeadID:       candidate.ID,
			DuplicateIDs: duplicates,
		})
	}
	return duplicates
}

// Assign picks the owner for a lead, or nil when no Sales Executive is on the
// roster. A successful pick is published as an assignment event.
func (s *Service) Assign(ctx context.Context, lead domain.Lead, pool []domain.Lead, owners []domain.Owner) *uuid.UUID {
	ownerID := s.balancer.Assign(lead, pool, owners)
	if ownerID != nil {
		if s.log != nil {
			s.log.AutomationDecision("assign", lead.ID.String(), "owner_id", ownerID.String())
		}
		s.publish(ctx, events.LeadAssigned{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			OwnerID:   *ownerID,
			City:      lead.City,
		})
	}
	return ownerID
}

// CityFromPhone resolves the lead's likely city from its phone prefix.
func (s *Service) CityFromPhone(phone string) string {
	return s.resolver.CityFromPhone(phone)
}

// CallWindowFor returns the suggested outbound-call window for a city.
func (s *Service) CallWindowFor(city string) string {
	return s.resolver.CallWindowFor(city)
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, event)
}

// overdueBy renders how far past its deadline the lead is, for event payloads.
func overdueBy(lead domain.Lead, now time.Time) string {
	since := lead.CreatedAt
	if lead.LastContactAt != nil {
		since = *lead.LastContactAt
	}
	return now.Sub(since).Round(time.Minute).String()
}
