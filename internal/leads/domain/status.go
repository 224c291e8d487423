package domain

import "strings"

// Status is a lead's position in the sales funnel.
type Status string

const (
	StatusNew                Status = "New"
	StatusContacted          Status = "Contacted"
	StatusQualified          Status = "Qualified"
	StatusTestDriveScheduled Status = "Test Drive Scheduled"
	StatusNegotiation        Status = "Negotiation"
	StatusWon                Status = "Won"

	// Terminal and side states outside the ordered funnel.
	StatusNotInterested    Status = "Not Interested"
	StatusInvalidDuplicate Status = "Invalid/Duplicate"
	StatusOnHold           Status = "On Hold"
)

// funnelOrder maps each ordered funnel status to its position. Side states
// are absent and report -1.
var funnelOrder = map[Status]int{
	StatusNew:                0,
	StatusContacted:          1,
	StatusQualified:          2,
	StatusTestDriveScheduled: 3,
	StatusNegotiation:        4,
	StatusWon:                5,
}

// ParseStatus maps free-form status text onto the closed Status set.
// Unrecognized values default to New so imported rows always land at the
// top of the funnel.
func ParseStatus(value string) Status {
	normalized := strings.TrimSpace(value)
	for _, s := range Statuses() {
		if strings.EqualFold(normalized, string(s)) {
			return s
		}
	}
	return StatusNew
}

// Statuses lists every valid status, funnel order first, side states last.
func Statuses() []Status {
	return []Status{
		StatusNew,
		StatusContacted,
		StatusQualified,
		StatusTestDriveScheduled,
		StatusNegotiation,
		StatusWon,
		StatusNotInterested,
		StatusInvalidDuplicate,
		StatusOnHold,
	}
}

// FunnelPosition returns the status position within the ordered funnel,
// or -1 for side states.
func (s Status) FunnelPosition() int {
	if pos, ok := funnelOrder[s]; ok {
		return pos
	}
	return -1
}

// IsContacted reports whether the lead has progressed to Contacted or beyond
// in the ordered funnel.
func (s Status) IsContacted() bool {
	pos := s.FunnelPosition()
	return pos >= funnelOrder[StatusContacted]
}

// IsQualifiedOrBeyond reports whether the lead has reached Qualified or a
// later funnel stage.
func (s Status) IsQualifiedOrBeyond() bool {
	pos := s.FunnelPosition()
	return pos >= funnelOrder[StatusQualified]
}
