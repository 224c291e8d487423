// Package locale infers city and outbound-call windows from phone numbers.
package locale

// Policy holds the dialing-prefix and call-window lookup tables.
type Policy struct {
	// CityByDialPrefix maps a fixed-length phone prefix to a city.
	CityByDialPrefix map[string]string
	// PrefixLength is how many leading bytes of the phone are inspected.
	PrefixLength int
	// FallbackCity is returned for unmatched prefixes.
	FallbackCity string
	// CallWindows maps known cities to suggested outbound-call windows.
	CallWindows map[string]string
	// DefaultCallWindow is the broad window for all other cities.
	DefaultCallWindow string
}

// DefaultPolicy returns the production lookup tables for the supported
// dealership regions.
func DefaultPolicy() Policy {
	const metroWindow = "10 AM - 12 PM, 3 PM - 6 PM"
	return Policy{
		CityByDialPrefix: map[string]string{
			"080": "Bangalore",
			"022": "Mumbai",
			"011": "Delhi",
			"040": "Hyderabad",
			"044": "Chennai",
		},
		PrefixLength: 3,
		FallbackCity: "Other",
		CallWindows: map[string]string{
			"Bangalore": metroWindow,
			"Mumbai":    metroWindow,
			"Delhi":     metroWindow,
			"Hyderabad": metroWindow,
			"Chennai":   metroWindow,
		},
		DefaultCallWindow: "10 AM - 6 PM",
	}
}

// Resolver answers locale lookups. It is stateless and safe for concurrent
// use.
type Resolver struct {
	policy Policy
}

// New creates a resolver with the given policy.
func New(policy Policy) *Resolver {
	return &Resolver{policy: policy}
}

// CityFromPhone maps the phone's dialing prefix to a city. Numbers too short
// to carry a full prefix, and unknown prefixes, map to the fallback city.
func (r *Resolver) CityFromPhone(phone string) string {
	if len(phone) < r.policy.PrefixLength {
		return r.policy.FallbackCity
	}
	if city, ok := r.policy.CityByDialPrefix[phone[:r.policy.PrefixLength]]; ok {
		return city
	}
	return r.policy.FallbackCity
}

// CallWindowFor returns the suggested outbound-call window for a city.
func (r *Resolver) CallWindowFor(city string) string {
	if window, ok := r.policy.CallWindows[city]; ok {
		return window
	}
	return r.policy.DefaultCallWindow
}
