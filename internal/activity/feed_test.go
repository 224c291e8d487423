package activity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFeedRecordAndRecent(t *testing.T) {
	feed := NewFeed(3)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		feed.Record(Entry{
			ID:         uuid.New(),
			Kind:       "lead_enriched",
			LeadID:     uuid.New(),
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	got := feed.Recent(0)
	if len(got) != 3 {
		t.Fatalf("Recent(0) returned %d entries, want 3 (capacity)", len(got))
	}
	// Newest first: minutes 4, 3, 2 survive eviction.
	for i, wantMinute := range []int{4, 3, 2} {
		if got[i].OccurredAt.Minute() != wantMinute {
			t.Errorf("entry %d occurred at minute %d, want %d", i, got[i].OccurredAt.Minute(), wantMinute)
		}
	}
}

func TestFeedRecentLimit(t *testing.T) {
	feed := NewFeed(10)
	for i := 0; i < 4; i++ {
		feed.Record(Entry{ID: uuid.New(), Kind: "assign"})
	}

	if got := feed.Recent(2); len(got) != 2 {
		t.Errorf("Recent(2) returned %d entries, want 2", len(got))
	}
	if got := feed.Recent(100); len(got) != 4 {
		t.Errorf("Recent(100) returned %d entries, want 4", len(got))
	}
}

func TestFeedEmpty(t *testing.T) {
	feed := NewFeed(5)
	if got := feed.Recent(10); len(got) != 0 {
		t.Errorf("Recent on an empty feed returned %d entries, want 0", len(got))
	}
}
