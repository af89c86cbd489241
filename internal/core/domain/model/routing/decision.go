// Package routing holds the value produced by the carrier router.
package routing

import "logistics/internal/core/domain/model/kernel"

// Rule names the routing rule that produced a decision.
type Rule string

const (
	RuleB2B         Rule = "B2B"
	RuleCOD         Rule = "COD"
	RuleRemoteArea  Rule = "REMOTE_AREA"
	RuleSmallParcel Rule = "SMALL_PARCEL"
	RuleOversized   Rule = "OVERSIZED"
	RuleTimeSlot    Rule = "TIME_SLOT"
	RuleDefault     Rule = "DEFAULT"
	RuleManual      Rule = "MANUAL"
)

// Decision is the carrier and service tier chosen for one order. Reason is a human readable
// explanation shown to operators. EstimatedCost is set only for flat-rate services.
type Decision struct {
	OrderID       kernel.UUID
	Carrier       kernel.Carrier
	ServiceType   kernel.ServiceType
	Rule          Rule
	Reason        string
	EstimatedCost *int
}

// Manual builds the decision recorded when an operator picks the carrier.
func Manual(orderID kernel.UUID, carrier kernel.Carrier, service kernel.ServiceType) Decision {
	return Decision{
		OrderID:     orderID,
		Carrier:     carrier,
		ServiceType: service,
		Rule:        RuleManual,
		Reason:      "manual selection",
	}
}
