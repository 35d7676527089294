// Package delay turns a train's live delay state into booking adjustments,
// booking status transitions, and notification payloads. Everything here is
// pure: no I/O, no clocks, no stored state.
package delay

import "errors"

var (
	// ErrInvalidDelay marks a negative delay or an unknown train status.
	ErrInvalidDelay = errors.New("invalid delay")
	// ErrInvalidStay marks a booking window whose checkout does not follow
	// its checkin.
	ErrInvalidStay = errors.New("invalid stay window")
	// ErrMissingRelation marks booking details with an unresolvable
	// passenger, train, or hotel.
	ErrMissingRelation = errors.New("missing booking relation")
)

// Severity grades the impact of a train's state on its linked bookings.
type Severity string

const (
	SeverityNone      Severity = "none"
	SeverityMinor     Severity = "minor"
	SeverityMajor     Severity = "major"
	SeverityCancelled Severity = "cancelled"
)
