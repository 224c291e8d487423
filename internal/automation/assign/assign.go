// Package assign selects sales owners for new leads via city-scoped load
// balancing.
package assign

import (
	"dealerdesk_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Balancer picks the least-loaded eligible owner for a lead. It is stateless
// and safe for concurrent use.
type Balancer struct{}

// New creates a balancer.
func New() *Balancer {
	return &Balancer{}
}

// Assign returns the owner the lead should go to, or nil when no eligible
// owner exists.
//
// Load is measured per city: only pool leads sharing the candidate's city
// count toward an owner's load. Among the owners tied at the minimum count,
// an owner listing the candidate's preferred model in their expertise wins;
// otherwise the first tied owner in roster order wins. Roster order is the
// only tie-break, so repeated calls with unchanged inputs return the same
// owner.
func (b *Balancer) Assign(lead domain.Lead, pool []domain.Lead, owners []domain.Owner) *uuid.UUID {
	eligible := make([]domain.Owner, 0, len(owners))
	for _, o := range owners {
		if o.Role == domain.RoleSalesExecutive {
			eligible = append(eligible, o)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	counts := make([]int, len(eligible))
	for _, other := range pool {
		if other.City != lead.City || other.Owner == nil {
			continue
		}
		for i, o := range eligible {
			if *other.Owner == o.ID {
				counts[i]++
				break
			}
		}
	}

	minCount := counts[0]
	for _, c := range counts[1:] {
		if c < minCount {
			minCount = c
		}
	}

	var tied []domain.Owner
	for i, o := range eligible {
		if counts[i] == minCount {
			tied = append(tied, o)
		}
	}

	if lead.PreferredModel != "" {
		for _, o := range tied {
			if o.HasExpertise(lead.PreferredModel) {
				id := o.ID
				return &id
			}
		}
	}

	id := tied[0].ID
	return &id
}
