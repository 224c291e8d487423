package assign

import (
	"testing"

	"dealerdesk_backend/internal/leads/domain"

	"github.com/google/uuid"
)

func TestAssign(t *testing.T) {
	balancer := New()

	se1 := domain.Owner{ID: uuid.New(), Name: "Asha", Role: domain.RoleSalesExecutive, Expertise: []string{"Nexon EV"}}
	se2 := domain.Owner{ID: uuid.New(), Name: "Vikram", Role: domain.RoleSalesExecutive, Expertise: []string{"Harrier"}}
	se3 := domain.Owner{ID: uuid.New(), Name: "Meera", Role: domain.RoleSalesExecutive}
	manager := domain.Owner{ID: uuid.New(), Name: "Rahul", Role: domain.RoleBusinessManager}

	owned := func(city string, owner uuid.UUID) domain.Lead {
		return domain.Lead{ID: uuid.New(), City: city, Owner: &owner}
	}

	tests := []struct {
		name   string
		lead   domain.Lead
		pool   []domain.Lead
		owners []domain.Owner
		want   *uuid.UUID
	}{
		{
			name:   "empty roster",
			lead:   domain.Lead{City: "Mumbai"},
			owners: nil,
			want:   nil,
		},
		{
			name:   "managers only",
			lead:   domain.Lead{City: "Mumbai"},
			owners: []domain.Owner{manager},
			want:   nil,
		},
		{
			name:   "least loaded in the lead's city wins",
			lead:   domain.Lead{City: "Mumbai"},
			pool:   []domain.Lead{owned("Mumbai", se1.ID), owned("Mumbai", se1.ID), owned("Mumbai", se2.ID)},
			owners: []domain.Owner{se1, se2},
			want:   &se2.ID,
		},
		{
			name: "load in other cities is ignored",
			lead: domain.Lead{City: "Mumbai"},
			pool: []domain.Lead{
				owned("Delhi", se2.ID), owned("Delhi", se2.ID), owned("Delhi", se2.ID),
				owned("Mumbai", se1.ID),
			},
			owners: []domain.Owner{se1, se2},
			want:   &se2.ID,
		},
		{
			name:   "expertise breaks ties",
			lead:   domain.Lead{City: "Mumbai", PreferredModel: "Harrier"},
			pool:   nil,
			owners: []domain.Owner{se1, se2, se3},
			want:   &se2.ID,
		},
		{
			name:   "expertise only considered among the tied minimum",
			lead:   domain.Lead{City: "Mumbai", PreferredModel: "Harrier"},
			pool:   []domain.Lead{owned("Mumbai", se2.ID)},
			owners: []domain.Owner{se1, se2, se3},
			want:   &se1.ID,
		},
		{
			name:   "roster order breaks remaining ties",
			lead:   domain.Lead{City: "Chennai"},
			pool:   nil,
			owners: []domain.Owner{se3, se1, se2},
			want:   &se3.ID,
		},
		{
			name:   "unassigned pool leads do not count",
			lead:   domain.Lead{City: "Mumbai"},
			pool:   []domain.Lead{{ID: uuid.New(), City: "Mumbai"}},
			owners: []domain.Owner{se1, se2},
			want:   &se1.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := balancer.Assign(tt.lead, tt.pool, tt.owners)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("Assign() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("Assign() = %s, want %s", *got, *tt.want)
			}
		})
	}
}

func TestAssignDeterministic(t *testing.T) {
	balancer := New()

	se1 := domain.Owner{ID: uuid.New(), Name: "Asha", Role: domain.RoleSalesExecutive}
	se2 := domain.Owner{ID: uuid.New(), Name: "Vikram", Role: domain.RoleSalesExecutive}
	lead := domain.Lead{City: "Hyderabad"}
	owners := []domain.Owner{se1, se2}

	first := balancer.Assign(lead, nil, owners)
	if first == nil {
		t.Fatal("Assign() returned nil for a non-empty roster")
	}
	for i := 0; i < 5; i++ {
		got := balancer.Assign(lead, nil, owners)
		if got == nil || *got != *first {
			t.Fatalf("Assign() call %d = %v, first call = %s", i+2, got, *first)
		}
	}
}
