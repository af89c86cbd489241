package order

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// Status is the order lifecycle state maintained by the order management collaborator.
//
//	PENDING ─> CONFIRMED ─> PROCESSING ─> PICKING ─> PACKED ─> SHIPPED ─┬─> DELIVERED
//	                                                                    └─> RETURNED
//	CANCELLED and ON_HOLD can be entered from any open status.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Processing
	Picking
	Packed
	Shipped
	Delivered
	Cancelled
	Returned
	OnHold
)

var statusNames = map[Status]string{
	Unknown:    "UNKNOWN",
	Pending:    "PENDING",
	Confirmed:  "CONFIRMED",
	Processing: "PROCESSING",
	Picking:    "PICKING",
	Packed:     "PACKED",
	Shipped:    "SHIPPED",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
	Returned:   "RETURNED",
	OnHold:     "ON_HOLD",
}

// shippableStatuses may receive a new shipment.
var shippableStatuses = []Status{Confirmed, Processing, Packed}

// handOverStatuses may be handed to a carrier once a label is printed.
var handOverStatuses = []Status{Confirmed, Processing, Picking, Packed}

// ShippableStatuses lists the statuses a shipment can be created from.
func ShippableStatuses() []Status {
	return slices.Clone(shippableStatuses)
}

// Validate rejects Unknown and out-of-range values, e.g. read from a corrupted row.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsShippable reports whether a shipment may be created for an order in this status.
func (s Status) IsShippable() bool {
	return slices.Contains(shippableStatuses, s)
}

// StartProcessing is the status after a shipment was created: CONFIRMED moves to PROCESSING,
// PROCESSING and PACKED stay where they are.
func (s Status) StartProcessing() (Status, bool) {
	switch s {
	case Confirmed:
		return Processing, true
	case Processing, Packed:
		return s, true
	default:
		return s, false
	}
}

// Ship transitions to SHIPPED.
func (s Status) Ship() (Status, bool) {
	if !slices.Contains(handOverStatuses, s) {
		return s, false
	}
	return Shipped, true
}

// Deliver transitions SHIPPED to DELIVERED.
func (s Status) Deliver() (Status, bool) {
	if s != Shipped {
		return s, false
	}
	return Delivered, true
}

// Return transitions SHIPPED to RETURNED.
func (s Status) Return() (Status, bool) {
	if s != Shipped {
		return s, false
	}
	return Returned, true
}
