package vendor

import "fmt"

// Kind classifies a single vendor failure for logging and diagnostics.
// The router treats every kind the same way: advance to the next candidate.
type Kind string

const (
	KindAuth         Kind = "auth"
	KindRateLimit    Kind = "rate_limit"
	KindNotFound     Kind = "not_found"
	KindTimeout      Kind = "timeout"
	KindConnectivity Kind = "connectivity"
	KindUnknown      Kind = "unknown"
)

// Error is a single vendor implementation's failure.
type Error struct {
	Vendor string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Vendor, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UnsupportedCapabilityError reports a capability absent from the registry.
// It is raised before any vendor is consulted.
type UnsupportedCapabilityError struct {
	Capability Capability
}

func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("unsupported capability: %s", e.Capability)
}

// AllFailedError reports that every candidate vendor for a capability
// failed or was skipped as unsupported. Last is the last recorded vendor
// error, nil when the candidate list was empty or fully skipped.
type AllFailedError struct {
	Capability Capability
	Last       error
}

func (e *AllFailedError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("all vendors failed for %s: no vendor attempted", e.Capability)
	}
	return fmt.Sprintf("all vendors failed for %s: last error: %v", e.Capability, e.Last)
}

func (e *AllFailedError) Unwrap() error { return e.Last }

// ConfigurationError reports a missing or invalid credential, detected at
// vendor construction time before any network call.
type ConfigurationError struct {
	Vendor string
	Option string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: required configuration option %q is not set", e.Vendor, e.Option)
}
