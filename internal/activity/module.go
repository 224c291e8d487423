package activity

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dealerdesk_backend/internal/events"
	apphttp "dealerdesk_backend/internal/http"
	"dealerdesk_backend/platform/apperr"
	"dealerdesk_backend/platform/httpkit"
	"dealerdesk_backend/platform/logger"
)

// Module is the activity bounded context module. It is both an HTTP module
// and an event subscriber.
type Module struct {
	feed *Feed
	log  *logger.Logger
}

// NewModule creates the activity module with a bounded feed.
func NewModule(log *logger.Logger) *Module {
	return &Module{
		feed: NewFeed(DefaultCapacity),
		log:  log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "activity"
}

// Feed returns the underlying feed for external use.
func (m *Module) Feed() *Feed {
	return m.feed
}

// RegisterRoutes mounts the activity routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/automation/activity", m.list)
}

// RegisterHandlers subscribes the feed to automation decision events.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.LeadEnriched{}.EventName(), m)
	bus.Subscribe(events.LeadAssigned{}.EventName(), m)
	bus.Subscribe(events.DuplicatesFlagged{}.EventName(), m)
	bus.Subscribe(events.SLABreachDetected{}.EventName(), m)
}

// Handle converts domain events into feed entries.
func (m *Module) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadEnriched:
		m.feed.Record(Entry{
			ID:     uuid.New(),
			Kind:   "lead_enriched",
			LeadID: e.LeadID,
			Detail: map[string]any{
				"city":         e.City,
				"inferredCity": e.InferredCity,
				"score":        e.Score,
				"channel":      e.Channel,
			},
			OccurredAt: e.OccurredAt(),
		})
	case events.LeadAssigned:
		m.feed.Record(Entry{
			ID:     uuid.New(),
			Kind:   "lead_assigned",
			LeadID: e.LeadID,
			Detail: map[string]any{
				"ownerId": e.OwnerID.String(),
				"city":    e.City,
			},
			OccurredAt: e.OccurredAt(),
		})
	case events.DuplicatesFlagged:
		m.feed.Record(Entry{
			ID:     uuid.New(),
			Kind:   "duplicates_flagged",
			LeadID: e.LeadID,
			Detail: map[string]any{
				"duplicateCount": len(e.DuplicateIDs),
			},
			OccurredAt: e.OccurredAt(),
		})
	case events.SLABreachDetected:
		detail := map[string]any{
			"status":    e.Status,
			"overdueBy": e.OverdueBy,
		}
		if e.OwnerID != nil {
			detail["ownerId"] = e.OwnerID.String()
		}
		m.feed.Record(Entry{
			ID:         uuid.New(),
			Kind:       "sla_breach",
			LeadID:     e.LeadID,
			Detail:     detail,
			OccurredAt: e.OccurredAt(),
		})
	}
	return nil
}

// list serves the recent entries, newest first.
// GET /api/v1/automation/activity?limit=
func (m *Module) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			httpkit.HandleError(c, apperr.BadRequest("invalid limit"))
			return
		}
		limit = parsed
	}
	httpkit.OK(c, gin.H{"entries": m.feed.Recent(limit)})
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
