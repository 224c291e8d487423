// Package dedup flags probable duplicate leads within a recency window.
package dedup

import (
	"strings"
	"time"

	"dealerdesk_backend/internal/leads/domain"
	"dealerdesk_backend/platform/textsim"

	"github.com/google/uuid"
)

// Policy holds the tunable duplicate-matching rules.
type Policy struct {
	// RecencyWindow limits matching to pool leads created within this
	// window before the reference time. Older leads are never duplicates.
	RecencyWindow time.Duration
	// NameSimilarityThreshold is the minimum (exclusive) textsim score for
	// the fuzzy name rule to fire.
	NameSimilarityThreshold float64
	// PhoneSuffixLength is how many trailing phone digits the fuzzy name
	// rule compares. Shorter phones compare whatever suffix they have.
	PhoneSuffixLength int
}

// DefaultPolicy returns the production matching rules: 14-day window,
// 0.8 similarity, last 4 digits.
func DefaultPolicy() Policy {
	return Policy{
		RecencyWindow:           14 * 24 * time.Hour,
		NameSimilarityThreshold: 0.8,
		PhoneSuffixLength:       4,
	}
}

// Detector finds probable duplicates of a candidate lead. It is stateless
// and safe for concurrent use.
type Detector struct {
	policy Policy
}

// New creates a detector with the given policy.
func New(policy Policy) *Detector {
	return &Detector{policy: policy}
}

// FindDuplicates returns the IDs of pool leads that probably represent the
// same person as the candidate. A pool lead matches when any one rule fires:
//
//  1. byte-equal phone number
//  2. case-insensitive equal email, both sides non-empty
//  3. name similarity above the threshold AND equal trailing phone digits
//     (the shared-household pattern: family members registering with the
//     same number and near-identical names)
//
// The rules are independent triggers, so evaluation order never changes the
// result set. The candidate itself and pool leads created before the recency
// window are skipped.
func (d *Detector) FindDuplicates(candidate domain.Lead, pool []domain.Lead, now time.Time) []uuid.UUID {
	cutoff := now.Add(-d.policy.RecencyWindow)

	var matches []uuid.UUID
	for _, other := range pool {
		if other.ID == candidate.ID {
			continue
		}
		if other.CreatedAt.Before(cutoff) {
			continue
		}

		if d.isDuplicate(candidate, other) {
			matches = append(matches, other.ID)
		}
	}
	return matches
}

func (d *Detector) isDuplicate(candidate, other domain.Lead) bool {
	if other.Phone == candidate.Phone {
		return true
	}

	if candidate.Email != "" && other.Email != "" &&
		strings.EqualFold(candidate.Email, other.Email) {
		return true
	}

	similarity := textsim.Similarity(other.Name, candidate.Name)
	return similarity > d.policy.NameSimilarityThreshold &&
		phoneSuffix(other.Phone, d.policy.PhoneSuffixLength) == phoneSuffix(candidate.Phone, d.policy.PhoneSuffixLength)
}

// phoneSuffix returns the last n bytes of phone, or the whole string when it
// is shorter than n.
func phoneSuffix(phone string, n int) string {
	if len(phone) <= n {
		return phone
	}
	return phone[len(phone)-n:]
}
