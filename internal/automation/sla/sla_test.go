package sla

import (
	"testing"
	"time"

	"dealerdesk_backend/internal/leads/domain"

	"github.com/google/uuid"
)

func TestIsBreached(t *testing.T) {
	monitor := New(DefaultPolicy())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	agoPtr := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name string
		lead domain.Lead
		want bool
	}{
		{
			name: "new lead past first-contact window, never contacted",
			lead: domain.Lead{Status: domain.StatusNew, CreatedAt: ago(16 * time.Minute)},
			want: true,
		},
		{
			name: "new lead within first-contact window",
			lead: domain.Lead{Status: domain.StatusNew, CreatedAt: ago(14 * time.Minute)},
			want: false,
		},
		{
			name: "new lead exactly at the window boundary",
			lead: domain.Lead{Status: domain.StatusNew, CreatedAt: ago(15 * time.Minute)},
			want: false,
		},
		{
			name: "new lead past window but already contacted",
			lead: domain.Lead{
				Status:        domain.StatusNew,
				CreatedAt:     ago(2 * time.Hour),
				LastContactAt: agoPtr(time.Hour),
			},
			want: false,
		},
		{
			name: "contacted lead with stale follow-up",
			lead: domain.Lead{
				Status:        domain.StatusContacted,
				CreatedAt:     ago(72 * time.Hour),
				LastContactAt: agoPtr(25 * time.Hour),
			},
			want: true,
		},
		{
			name: "contacted lead with recent follow-up",
			lead: domain.Lead{
				Status:        domain.StatusContacted,
				CreatedAt:     ago(72 * time.Hour),
				LastContactAt: agoPtr(23 * time.Hour),
			},
			want: false,
		},
		{
			name: "contacted lead exactly at the follow-up boundary",
			lead: domain.Lead{
				Status:        domain.StatusContacted,
				CreatedAt:     ago(72 * time.Hour),
				LastContactAt: agoPtr(24 * time.Hour),
			},
			want: false,
		},
		{
			name: "qualified lead with no contact timestamp",
			lead: domain.Lead{Status: domain.StatusQualified, CreatedAt: ago(10 * 24 * time.Hour)},
			want: false,
		},
		{
			name: "negotiation lead with stale follow-up",
			lead: domain.Lead{
				Status:        domain.StatusNegotiation,
				CreatedAt:     ago(30 * 24 * time.Hour),
				LastContactAt: agoPtr(48 * time.Hour),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := monitor.IsBreached(tt.lead, now); got != tt.want {
				t.Errorf("IsBreached() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBreachesPreservesOrder(t *testing.T) {
	monitor := New(DefaultPolicy())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	breachedA := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-time.Hour)}
	fine := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-time.Minute)}
	breachedB := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-2 * time.Hour)}

	got := monitor.Breaches([]domain.Lead{breachedA, fine, breachedB}, now)
	if len(got) != 2 {
		t.Fatalf("Breaches() returned %d leads, want 2", len(got))
	}
	if got[0].ID != breachedA.ID || got[1].ID != breachedB.ID {
		t.Errorf("Breaches() order = [%s, %s], want [%s, %s]", got[0].ID, got[1].ID, breachedA.ID, breachedB.ID)
	}
}
