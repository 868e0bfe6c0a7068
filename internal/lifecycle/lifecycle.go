// Package lifecycle declares which status values an entity may move to from
// its current status. The transition tables are compiled into the binary
// and queried, never mutated at runtime.
//
// Self-transitions (current == requested) are treated as a no-op success
// for every machine: retrying an idempotent status update must not fail.
package lifecycle

import (
	"fmt"

	"robot-rental-admin/internal/enums"
)

// Result is the outcome of a transition check. When Valid is false, Errors
// holds display-ready messages explaining the rejection.
type Result struct {
	Valid  bool
	Errors []string
}

func ok() Result {
	return Result{Valid: true}
}

func invalid(msgs ...string) Result {
	return Result{Valid: false, Errors: msgs}
}

// Machine is a finite-state rule table for one entity type.
type Machine struct {
	entity  string
	resolve func(code string) error
	allowed map[string][]string
}

// ValidateStatusChange checks whether an entity currently in status current
// may move to requested in one step. Both codes must resolve via the
// entity's enumeration.
func (m *Machine) ValidateStatusChange(current, requested string) Result {
	if err := m.resolve(requested); err != nil {
		return invalid(fmt.Sprintf("unknown %s status %q", m.entity, requested))
	}

	if current == requested {
		return ok()
	}

	next, found := m.allowed[current]
	if !found {
		return invalid(fmt.Sprintf("unknown current %s status %q", m.entity, current))
	}

	for _, s := range next {
		if s == requested {
			return ok()
		}
	}

	return invalid(fmt.Sprintf(
		"%s status transition from %q to %q is not allowed", m.entity, current, requested))
}

// AllowedTransitions returns the statuses reachable in one step. Terminal
// statuses return an empty list.
func (m *Machine) AllowedTransitions(current string) []string {
	next := m.allowed[current]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// Orders moves pending -> confirmed/cancelled, confirmed -> completed,
// cancelled or overdue, overdue -> completed/cancelled. Completed and
// cancelled are terminal.
var Orders = &Machine{
	entity: "order",
	resolve: func(code string) error {
		_, err := enums.OrderStatusFromCode(code)
		return err
	},
	allowed: map[string][]string{
		string(enums.OrderPending): {
			string(enums.OrderConfirmed),
			string(enums.OrderCancelled),
		},
		string(enums.OrderConfirmed): {
			string(enums.OrderCompleted),
			string(enums.OrderCancelled),
			string(enums.OrderOverdue),
		},
		string(enums.OrderOverdue): {
			string(enums.OrderCompleted),
			string(enums.OrderCancelled),
		},
		string(enums.OrderCompleted): {},
		string(enums.OrderCancelled): {},
	},
}

// Rentals mirrors the order table with active in place of confirmed.
var Rentals = &Machine{
	entity: "rental",
	resolve: func(code string) error {
		_, err := enums.RentalStatusFromCode(code)
		return err
	},
	allowed: map[string][]string{
		string(enums.RentalPending): {
			string(enums.RentalActive),
			string(enums.RentalCancelled),
		},
		string(enums.RentalActive): {
			string(enums.RentalCompleted),
			string(enums.RentalCancelled),
			string(enums.RentalOverdue),
		},
		string(enums.RentalOverdue): {
			string(enums.RentalCompleted),
			string(enums.RentalCancelled),
		},
		string(enums.RentalCompleted): {},
		string(enums.RentalCancelled): {},
	},
}

// Devices may circulate between active, idle and maintenance; retired is
// terminal.
var Devices = &Machine{
	entity: "device",
	resolve: func(code string) error {
		_, err := enums.DeviceStatusFromCode(code)
		return err
	},
	allowed: map[string][]string{
		string(enums.DeviceActive): {
			string(enums.DeviceIdle),
			string(enums.DeviceMaintenance),
			string(enums.DeviceRetired),
		},
		string(enums.DeviceIdle): {
			string(enums.DeviceActive),
			string(enums.DeviceMaintenance),
			string(enums.DeviceRetired),
		},
		string(enums.DeviceMaintenance): {
			string(enums.DeviceActive),
			string(enums.DeviceIdle),
			string(enums.DeviceRetired),
		},
		string(enums.DeviceRetired): {},
	},
}

// CharityActivities move planned -> ongoing -> completed; cancellation is
// allowed until the activity completes.
var CharityActivities = &Machine{
	entity: "charity activity",
	resolve: func(code string) error {
		_, err := enums.CharityActivityStatusFromCode(code)
		return err
	},
	allowed: map[string][]string{
		string(enums.ActivityPlanned): {
			string(enums.ActivityOngoing),
			string(enums.ActivityCancelled),
		},
		string(enums.ActivityOngoing): {
			string(enums.ActivityCompleted),
			string(enums.ActivityCancelled),
		},
		string(enums.ActivityCompleted): {},
		string(enums.ActivityCancelled): {},
	},
}

// Payments only move forward; refunded is terminal.
var Payments = &Machine{
	entity: "payment",
	resolve: func(code string) error {
		_, err := enums.PaymentStatusFromCode(code)
		return err
	},
	allowed: map[string][]string{
		string(enums.PaymentUnpaid): {
			string(enums.PaymentPartial),
			string(enums.PaymentPaid),
		},
		string(enums.PaymentPartial): {
			string(enums.PaymentPaid),
			string(enums.PaymentRefunded),
		},
		string(enums.PaymentPaid): {
			string(enums.PaymentRefunded),
		},
		string(enums.PaymentRefunded): {},
	},
}
