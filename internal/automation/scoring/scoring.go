// Package scoring computes the 0-100 quality score of a lead.
package scoring

import (
	"strconv"
	"strings"

	"dealerdesk_backend/internal/leads/domain"
)

// BudgetTier awards points when the parsed budget meets the threshold.
// Tiers are evaluated in order, first match wins.
type BudgetTier struct {
	Threshold int64
	Points    int
}

// Policy holds the tunable point tables of the scoring model.
type Policy struct {
	ChannelPoints        map[domain.Channel]int
	DefaultChannelPoints int
	BudgetTiers          []BudgetTier
	DefaultBudgetPoints  int
	ModelInterestPoints  int
	RepeatLeadPoints     int
	PremiumCities        []string
	PremiumCityPoints    int
	MaxScore             int
}

// DefaultPolicy returns the production point tables.
func DefaultPolicy() Policy {
	return Policy{
		ChannelPoints: map[domain.Channel]int{
			domain.ChannelWebsite: 20,
			domain.ChannelGoogle:  18,
			domain.ChannelFB:      15,
			domain.ChannelTwitter: 12,
			domain.ChannelOffline: 10,
		},
		DefaultChannelPoints: 10,
		BudgetTiers: []BudgetTier{
			{Threshold: 1_500_000, Points: 25},
			{Threshold: 1_000_000, Points: 20},
			{Threshold: 800_000, Points: 15},
		},
		DefaultBudgetPoints: 10,
		ModelInterestPoints: 15,
		RepeatLeadPoints:    20,
		PremiumCities:       []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad"},
		PremiumCityPoints:   10,
		MaxScore:            100,
	}
}

// Scorer computes lead scores. It is stateless and safe for concurrent use.
type Scorer struct {
	policy Policy
}

// New creates a scorer with the given policy.
func New(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

// Score returns the lead's quality score in [0, MaxScore]. The computation
// is pure: the same snapshot always yields the same score.
func (s *Scorer) Score(lead domain.Lead) int {
	score := 0

	if points, ok := s.policy.ChannelPoints[lead.Channel]; ok {
		score += points
	} else {
		score += s.policy.DefaultChannelPoints
	}

	if budget, ok := parseBudget(lead.BudgetRange); ok {
		score += s.budgetPoints(budget)
	}

	if lead.PreferredModel != "" {
		score += s.policy.ModelInterestPoints
	}

	if lead.IsRepeatLead {
		score += s.policy.RepeatLeadPoints
	}

	if s.isPremiumCity(lead.City) {
		score += s.policy.PremiumCityPoints
	}

	if score > s.policy.MaxScore {
		return s.policy.MaxScore
	}
	return score
}

func (s *Scorer) budgetPoints(budget int64) int {
	for _, tier := range s.policy.BudgetTiers {
		if budget >= tier.Threshold {
			return tier.Points
		}
	}
	return s.policy.DefaultBudgetPoints
}

func (s *Scorer) isPremiumCity(city string) bool {
	for _, c := range s.policy.PremiumCities {
		if c == city {
			return true
		}
	}
	return false
}

// parseBudget extracts the numeric component of free-text budget ranges like
// "₹8,00,000 - ₹10,00,000". Every non-digit rune is stripped and the rest is
// parsed as an integer. Text without digits, or digits that overflow int64,
// yield no budget signal rather than an error.
func parseBudget(text string) (int64, bool) {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	value, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
