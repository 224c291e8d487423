// Package service computes dashboard metrics over caller-supplied lead
// snapshots. Like the automation engine, it holds no lead state of its own.
package service

import (
	"math"
	"time"

	"dealerdesk_backend/internal/automation/sla"
	"dealerdesk_backend/internal/insights/transport"
	"dealerdesk_backend/internal/leads/domain"
	"dealerdesk_backend/platform/logger"
)

// Service computes insight metrics. Safe for concurrent use.
type Service struct {
	monitor *sla.Monitor
	log     *logger.Logger
}

// New creates the insights service. The SLA monitor shares the automation
// policy so the dashboard's breach count agrees with the SLA report.
func New(monitor *sla.Monitor, log *logger.Logger) *Service {
	return &Service{monitor: monitor, log: log}
}

// Dashboard computes the dashboard metrics for a lead snapshot at the given
// reference time. A from/to range restricts which leads are counted; a nil
// bound leaves that side open.
//
// Percentages follow the reporting conventions the sales team reviews against:
// the first-contact rate is taken over today's New leads, and every owner's
// qualified rate is taken over the full contacted set, not the owner's own
// leads, so owner rates sum to the team-wide qualified percentage.
func (s *Service) Dashboard(leads []domain.Lead, owners []domain.Owner, now time.Time, from, to *time.Time) transport.DashboardMetrics {
	filtered := filterByRange(leads, from, to)

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var leadsToday, newToday, contactedUnder15m int
	var contacted, qualified, won, slaBreaches int

	channelMix := make(map[string]int, len(domain.Channels()))
	for _, ch := range domain.Channels() {
		channelMix[string(ch)] = 0
	}
	statusFunnel := make(map[string]int, len(domain.Statuses()))
	for _, st := range domain.Statuses() {
		statusFunnel[string(st)] = 0
	}

	for _, lead := range filtered {
		if !lead.CreatedAt.Before(startOfDay) {
			leadsToday++
			if lead.Status == domain.StatusNew {
				newToday++
				if lead.LastContactAt != nil && !lead.LastContactAt.After(lead.CreatedAt.Add(15*time.Minute)) {
					contactedUnder15m++
				}
			}
		}

		if lead.Status.IsContacted() {
			contacted++
		}
		if lead.Status.IsQualifiedOrBeyond() {
			qualified++
		}
		if lead.Status == domain.StatusWon {
			won++
		}
		if s.monitor.IsBreached(lead, now) {
			slaBreaches++
		}

		if _, ok := channelMix[string(lead.Channel)]; ok {
			channelMix[string(lead.Channel)]++
		}
		if _, ok := statusFunnel[string(lead.Status)]; ok {
			statusFunnel[string(lead.Status)]++
		}
	}

	metrics := transport.DashboardMetrics{
		LeadsToday:                  leadsToday,
		FirstContactUnder15m:        contactedUnder15m,
		FirstContactUnder15mPercent: percent(contactedUnder15m, newToday),
		QualifiedPercent:            percent(qualified, contacted),
		WonCount:                    won,
		SLABreachCount:              slaBreaches,
		ChannelMix:                  channelMix,
		StatusFunnel:                statusFunnel,
		OwnerPerformance:            s.ownerPerformance(filtered, owners, contacted),
	}

	if s.log != nil {
		s.log.Info("dashboard computed",
			"leads", len(filtered),
			"leads_today", leadsToday,
			"sla_breaches", slaBreaches,
		)
	}
	return metrics
}

func (s *Service) ownerPerformance(leads []domain.Lead, owners []domain.Owner, contactedTotal int) []transport.OwnerPerformance {
	performance := make([]transport.OwnerPerformance, 0, len(owners))
	for _, owner := range owners {
		if owner.Role != domain.RoleSalesExecutive {
			continue
		}

		var total, calls, firstContact, qualified, won int
		for _, lead := range leads {
			if lead.Owner == nil || *lead.Owner != owner.ID {
				continue
			}
			total++
			if lead.Status != domain.StatusNew {
				calls++
				if lead.LastContactAt != nil {
					firstContact++
				}
			}
			if lead.Status.IsQualifiedOrBeyond() {
				qualified++
			}
			if lead.Status == domain.StatusWon {
				won++
			}
		}

		performance = append(performance, transport.OwnerPerformance{
			OwnerID:          owner.ID,
			OwnerName:        owner.Name,
			Calls:            calls,
			FirstContactRate: percent(firstContact, total),
			QualifiedRate:    percent(qualified, contactedTotal),
			WonCount:         won,
		})
	}
	return performance
}

func filterByRange(leads []domain.Lead, from, to *time.Time) []domain.Lead {
	if from == nil && to == nil {
		return leads
	}
	filtered := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if from != nil && lead.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && lead.CreatedAt.After(*to) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
