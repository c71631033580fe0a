package order

import (
	"fmt"

	"speedeats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	unassigned ──claim──> assigned ──mark-ready──> ready ──pickup──> completed
//	     ^                    │                      │
//	     └──────release───────┴──────────────────────┘
//
// completed and cancelled are terminal. Deletion is permitted only from
// unassigned or cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unassigned is the initial status: the order waits for a rider to claim it.
	Unassigned

	// Assigned indicates a rider has claimed the order.
	Assigned

	// Ready indicates the rider delivered the order and it awaits customer pickup.
	Ready

	// Completed indicates the customer acknowledged pickup. Terminal.
	Completed

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Unassigned: "unassigned",
		Assigned:   "assigned",
		Ready:      "ready",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unassigned: "unassigned",
		Assigned:   "assigned",
		Ready:      "ready",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted status string. Used when
// reconstructing orders from the database.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted form of the status ("unassigned", "assigned",
// "ready", "completed", "cancelled"), or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Claim transitions unassigned -> assigned. Any other starting state is an
// InvalidState error naming the current status and the requested event.
func (s Status) Claim() (Status, error) {
	if s != Unassigned {
		return Unknown, errs.NewInvalidStateError(s.String(), "claim")
	}
	return Assigned, nil
}

// Release transitions assigned or ready back to unassigned. Releasing from
// ready cancels the delivery, not the order.
func (s Status) Release() (Status, error) {
	if s != Assigned && s != Ready {
		return Unknown, errs.NewInvalidStateError(s.String(), "release")
	}
	return Unassigned, nil
}

// MarkReady transitions assigned -> ready.
func (s Status) MarkReady() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateError(s.String(), "mark ready")
	}
	return Ready, nil
}

// Pickup transitions ready -> completed, making the order eligible for rating.
func (s Status) Pickup() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewInvalidStateError(s.String(), "pickup")
	}
	return Completed, nil
}

// ValidateCanBeDeleted allows deletion only from unassigned or cancelled.
func (s Status) ValidateCanBeDeleted() error {
	if s != Unassigned && s != Cancelled {
		return errs.NewInvalidStateError(s.String(), "delete")
	}
	return nil
}

// ValidateCanHaveRider enforces that a rider is set if and only if the order
// is assigned, ready, or completed.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s != Assigned && s != Ready && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot have a rider", s.String()),
		)
	}

	if !rider && (s == Assigned || s == Ready || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must have a rider", s.String()),
		)
	}

	return nil
}
