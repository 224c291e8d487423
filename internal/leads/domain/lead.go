// Package domain provides the core lead and owner model shared by the
// automation and insights bounded contexts. The engine never holds the
// canonical lead collection; callers pass point-in-time snapshots of these
// values and apply returned decisions to their own state.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a dealership sales lead snapshot.
type Lead struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email,omitempty"`
	City           string     `json:"city"`
	PreferredModel string     `json:"preferredModel,omitempty"`
	BudgetRange    string     `json:"budgetRange,omitempty"`
	Channel        Channel    `json:"channel"`
	Owner          *uuid.UUID `json:"owner,omitempty"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	Score          int        `json:"score"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastContactAt  *time.Time `json:"lastContactAt,omitempty"`
	NextActionAt   *time.Time `json:"nextActionAt,omitempty"`
	Timezone       string     `json:"timezone,omitempty"`
	IsRepeatLead   bool       `json:"isRepeatLead"`
	DuplicateOf    *uuid.UUID `json:"duplicateOf,omitempty"`
}

// OwnerRole distinguishes sales staff roles. Only Sales Executives
// participate in auto-assignment.
type OwnerRole string

const (
	RoleSalesExecutive  OwnerRole = "Sales Executive"
	RoleBusinessManager OwnerRole = "Business Manager"
)

// Owner is a member of the sales team. The roster is externally supplied;
// the engine only reads it for assignment decisions.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      OwnerRole `json:"role"`
	City      string    `json:"city,omitempty"`
	Expertise []string  `json:"expertise,omitempty"`
}

// HasExpertise reports whether the owner lists the given model.
func (o Owner) HasExpertise(model string) bool {
	for _, m := range o.Expertise {
		if m == model {
			return true
		}
	}
	return false
}
