package shipment

import (
	"fmt"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the shipment lifecycle state.
type Status int

const (
	Unknown Status = iota
	Pending
	LabelPrinted
	PickedUp
	InTransit
	OutForDelivery
	Delivered
	FailedDelivery
	Returned
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Pending:        "PENDING",
	LabelPrinted:   "LABEL_PRINTED",
	PickedUp:       "PICKED_UP",
	InTransit:      "IN_TRANSIT",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	FailedDelivery: "FAILED_DELIVERY",
	Returned:       "RETURNED",
}

var transitions = map[Status][]Status{
	Pending:        {LabelPrinted},
	LabelPrinted:   {PickedUp},
	PickedUp:       {InTransit},
	InTransit:      {OutForDelivery, FailedDelivery, Returned},
	OutForDelivery: {Delivered, FailedDelivery, Returned},
}

// Statuses returns every valid status in workflow order.
func Statuses() []Status {
	return []Status{Pending, LabelPrinted, PickedUp, InTransit, OutForDelivery, Delivered, FailedDelivery, Returned}
}

// ParseStatus accepts the upper-case name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if status != Unknown && n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a shipment status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == FailedDelivery || s == Returned
}

// CanTransitionTo reports whether next directly follows s.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}
