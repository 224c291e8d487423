package domain

import "strings"

// Channel identifies the acquisition channel of a lead.
type Channel string

const (
	ChannelFB      Channel = "FB"
	ChannelTwitter Channel = "Twitter"
	ChannelGoogle  Channel = "Google"
	ChannelWebsite Channel = "Website"
	ChannelOffline Channel = "Offline"
)

// ParseChannel maps free-form channel text onto the closed Channel set.
// Matching is case-insensitive; anything unrecognized maps to Offline.
// This is the single ingestion-time normalization point: downstream code
// may assume a Lead's Channel is always one of the five values.
func ParseChannel(value string) Channel {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "FB":
		return ChannelFB
	case "TWITTER":
		return ChannelTwitter
	case "GOOGLE":
		return ChannelGoogle
	case "WEBSITE":
		return ChannelWebsite
	case "OFFLINE":
		return ChannelOffline
	default:
		return ChannelOffline
	}
}

// Channels lists every valid channel in display order.
func Channels() []Channel {
	return []Channel{ChannelFB, ChannelTwitter, ChannelGoogle, ChannelWebsite, ChannelOffline}
}
