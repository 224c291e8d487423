package domain

import "testing"

func TestParseChannelNormalizesOnce(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"FB", ChannelFB},
		{"fb", ChannelFB},
		{" twitter ", ChannelTwitter},
		{"GOOGLE", ChannelGoogle},
		{"Website", ChannelWebsite},
		{"offline", ChannelOffline},
		{"Instagram", ChannelOffline},
		{"", ChannelOffline},
	}

	for _, tc := range tests {
		if got := ParseChannel(tc.in); got != tc.want {
			t.Errorf("ParseChannel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseStatusDefaultsToNew(t *testing.T) {
	if got := ParseStatus("weird value"); got != StatusNew {
		t.Errorf("ParseStatus fallback = %q, want %q", got, StatusNew)
	}
	if got := ParseStatus("test drive scheduled"); got != StatusTestDriveScheduled {
		t.Errorf("ParseStatus case-insensitive match failed: got %q", got)
	}
}

func TestFunnelPosition(t *testing.T) {
	if StatusNew.FunnelPosition() != 0 {
		t.Error("New should open the funnel")
	}
	if StatusWon.FunnelPosition() != 5 {
		t.Error("Won should close the funnel")
	}
	for _, s := range []Status{StatusNotInterested, StatusInvalidDuplicate, StatusOnHold} {
		if s.FunnelPosition() != -1 {
			t.Errorf("side state %q should not have a funnel position", s)
		}
	}
}

func TestIsContacted(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNew, false},
		{StatusContacted, true},
		{StatusQualified, true},
		{StatusWon, true},
		{StatusOnHold, false},
		{StatusNotInterested, false},
	}
	for _, tc := range tests {
		if got := tc.status.IsContacted(); got != tc.want {
			t.Errorf("%q.IsContacted() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestIsQualifiedOrBeyond(t *testing.T) {
	if StatusContacted.IsQualifiedOrBeyond() {
		t.Error("Contacted is before Qualified in the funnel")
	}
	for _, s := range []Status{StatusQualified, StatusTestDriveScheduled, StatusNegotiation, StatusWon} {
		if !s.IsQualifiedOrBeyond() {
			t.Errorf("%q should count as qualified or beyond", s)
		}
	}
}

func TestParsePriority(t *testing.T) {
	if got := ParsePriority("urgent"); got != PriorityUrgent {
		t.Errorf("ParsePriority(urgent) = %q", got)
	}
	if got := ParsePriority(""); got != PriorityMedium {
		t.Errorf("ParsePriority default = %q, want Medium", got)
	}
}

func TestHasExpertise(t *testing.T) {
	owner := Owner{Expertise: []string{"Nexon", "Tiago"}}
	if !owner.HasExpertise("Nexon") {
		t.Error("expected expertise match for Nexon")
	}
	if owner.HasExpertise("Harrier") {
		t.Error("unexpected expertise match for Harrier")
	}
}
