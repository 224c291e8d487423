package service

import (
	"context"
	"testing"
	"time"

	"dealerdesk_backend/internal/events"
	"dealerdesk_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// recordingBus captures published events synchronously for assertions.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func TestEnrich(t *testing.T) {
	bus := &recordingBus{}
	svc := New(nil, bus, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	lead := domain.Lead{
		ID:        uuid.New(),
		Name:      "Karan Mehta",
		Phone:     "08012345678",
		Channel:   domain.ChannelWebsite,
		Status:    domain.StatusNew,
		CreatedAt: now.Add(-time.Minute),
	}

	enriched := svc.Enrich(context.Background(), lead, now)

	if enriched.City != "Bangalore" {
		t.Errorf("City = %q, want %q", enriched.City, "Bangalore")
	}
	if enriched.Timezone != "Asia/Kolkata" {
		t.Errorf("Timezone = %q, want %q", enriched.Timezone, "Asia/Kolkata")
	}
	// Website 20 + premium city 10
	if enriched.Score != 30 {
		t.Errorf("Score = %d, want 30", enriched.Score)
	}
	if !enriched.CreatedAt.Equal(lead.CreatedAt) {
		t.Errorf("CreatedAt changed: %v != %v", enriched.CreatedAt, lead.CreatedAt)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	evt, ok := bus.published[0].(events.LeadEnriched)
	if !ok {
		t.Fatalf("published event is %T, want events.LeadEnriched", bus.published[0])
	}
	if evt.LeadID != lead.ID || !evt.InferredCity || evt.Score != 30 {
		t.Errorf("unexpected event payload: %+v", evt)
	}
}

func TestEnrichKeepsExplicitCity(t *testing.T) {
	svc := New(nil, nil, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	lead := domain.Lead{
		ID:      uuid.New(),
		Phone:   "08012345678",
		City:    "Pune",
		Channel: domain.ChannelOffline,
	}

	enriched := svc.Enrich(context.Background(), lead, now)
	if enriched.City != "Pune" {
		t.Errorf("City = %q, want %q", enriched.City, "Pune")
	}
}

func TestEnrichReplacesUnresolvedCity(t *testing.T) {
	svc := New(nil, nil, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	lead := domain.Lead{
		ID:      uuid.New(),
		Phone:   "02212345678",
		City:    "Other",
		Channel: domain.ChannelOffline,
	}

	enriched := svc.Enrich(context.Background(), lead, now)
	if enriched.City != "Mumbai" {
		t.Errorf("City = %q, want %q", enriched.City, "Mumbai")
	}
}

func TestSLAReportPublishesPerBreach(t *testing.T) {
	bus := &recordingBus{}
	svc := New(nil, bus, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	breached := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-time.Hour)}
	fine := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-time.Minute)}

	got := svc.SLAReport(context.Background(), []domain.Lead{breached, fine}, now)
	if len(got) != 1 || got[0].ID != breached.ID {
		t.Fatalf("SLAReport() = %v, want just %s", got, breached.ID)
	}
	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	if _, ok := bus.published[0].(events.SLABreachDetected); !ok {
		t.Errorf("published event is %T, want events.SLABreachDetected", bus.published[0])
	}
}

func TestAssignPublishesOnPick(t *testing.T) {
	bus := &recordingBus{}
	svc := New(nil, bus, nil)

	se := domain.Owner{ID: uuid.New(), Name: "Asha", Role: domain.RoleSalesExecutive}
	lead := domain.Lead{ID: uuid.New(), City: "Delhi"}

	got := svc.Assign(context.Background(), lead, nil, []domain.Owner{se})
	if got == nil || *got != se.ID {
		t.Fatalf("Assign() = %v, want %s", got, se.ID)
	}
	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}

	bus.published = nil
	if got := svc.Assign(context.Background(), lead, nil, nil); got != nil {
		t.Fatalf("Assign() with empty roster = %v, want nil", got)
	}
	if len(bus.published) != 0 {
		t.Errorf("published %d events on empty roster, want 0", len(bus.published))
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := stubConfig{firstContact: 30 * time.Minute}
	svc := New(cfg, nil, nil)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	lead := domain.Lead{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now.Add(-20 * time.Minute)}
	if svc.CheckSLA(lead, now) {
		t.Error("CheckSLA() = true under a 30m override, want false")
	}
	lead.CreatedAt = now.Add(-31 * time.Minute)
	if !svc.CheckSLA(lead, now) {
		t.Error("CheckSLA() = false past the 30m override, want true")
	}
}

type stubConfig struct {
	firstContact time.Duration
	followUp     time.Duration
	dupWindow    time.Duration
	threshold    float64
}

func (c stubConfig) GetFirstContactSLA() time.Duration    { return c.firstContact }
func (c stubConfig) GetFollowUpSLA() time.Duration        { return c.followUp }
func (c stubConfig) GetDuplicateWindow() time.Duration    { return c.dupWindow }
func (c stubConfig) GetNameSimilarityThreshold() float64  { return c.threshold }
