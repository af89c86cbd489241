package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created through
	// NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is the aggregate root for one consignment.
type Shipment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	carrier       kernel.Carrier
	serviceType   kernel.ServiceType
	rule          routing.Rule
	routingReason string
	estimatedCost *int

	packages    []Package
	totalWeight int
	totalSize   kernel.SizeCode

	delivery  order.Delivery
	codAmount *int64

	status         Status
	trackingNumber string
	shippedAt      *time.Time
	deliveredAt    *time.Time

	isConstructed bool
}

// Progress is the mutable part of a shipment, used to restore it from persistence.
type Progress struct {
	Status         Status
	TrackingNumber string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// NewShipment creates a PENDING shipment for o with the carrier and service of decision.
//
// When packages is empty the whole order goes into a single package weighing the order's total
// weight, sized by its largest item, and holding the SKUs of every line item.
func NewShipment(
	id kernel.UUID,
	o *order.Order,
	decision routing.Decision,
	packages []Package,
	defaults order.Defaults,
) (*Shipment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !decision.OrderID.IsEqual(o.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("decision for order %s applied to order %s", decision.OrderID, o.ID()))
	}

	if len(packages) == 0 {
		p, err := packageFromOrder(o, defaults)
		if err != nil {
			return nil, err
		}
		packages = []Package{p}
	}

	var codAmount *int64
	if o.IsCOD() {
		amount := o.Payment().TotalAmount
		codAmount = &amount
	}

	return RestoreShipment(id, decision, packages, o.Delivery(), codAmount, Progress{Status: Pending})
}

// RestoreShipment rebuilds a shipment in any status, e.g. from persistence.
func RestoreShipment(
	id kernel.UUID,
	decision routing.Decision,
	packages []Package,
	delivery order.Delivery,
	codAmount *int64,
	progress Progress,
) (*Shipment, error) {
	s := &Shipment{
		rule:           decision.Rule,
		estimatedCost:  decision.EstimatedCost,
		delivery:       delivery,
		codAmount:      codAmount,
		trackingNumber: progress.TrackingNumber,
		shippedAt:      progress.ShippedAt,
		deliveredAt:    progress.DeliveredAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(decision.OrderID),
		s.setCarrierAndService(decision.Carrier, decision.ServiceType),
		s.setRoutingReason(decision.Reason),
		s.setPackages(packages),
		s.setStatus(progress.Status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func packageFromOrder(o *order.Order, defaults order.Defaults) (Package, error) {
	items := o.Items()
	skus := make([]string, 0, len(items))
	for _, item := range items {
		if item.SKU() != "" {
			skus = append(skus, item.SKU())
		}
	}
	return NewPackage(kernel.NewUUID(), o.TotalWeight(defaults), o.MaxSizeCode(defaults), skus)
}

// Validate ensures the shipment was created through NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Shipment) Carrier() kernel.Carrier {
	return s.carrier
}

func (s *Shipment) ServiceType() kernel.ServiceType {
	return s.serviceType
}

// Rule is the routing rule that chose the carrier, RuleManual for operator overrides.
func (s *Shipment) Rule() routing.Rule {
	return s.rule
}

func (s *Shipment) RoutingReason() string {
	return s.routingReason
}

// EstimatedCost is the flat-rate price in yen, nil for weight-and-size priced services.
func (s *Shipment) EstimatedCost() *int {
	return s.estimatedCost
}

// Packages returns a copy of the packages.
func (s *Shipment) Packages() []Package {
	packages := make([]Package, len(s.packages))
	copy(packages, s.packages)
	return packages
}

func (s *Shipment) TotalWeight() int {
	return s.totalWeight
}

func (s *Shipment) TotalSize() kernel.SizeCode {
	return s.totalSize
}

func (s *Shipment) Delivery() order.Delivery {
	return s.delivery
}

// CODAmount is the amount the carrier collects, nil unless the order is paid on delivery.
func (s *Shipment) CODAmount() *int64 {
	return s.codAmount
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

func (s *Shipment) ShippedAt() *time.Time {
	return s.shippedAt
}

func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// Progress returns the mutable part of the shipment.
func (s *Shipment) Progress() Progress {
	return Progress{
		Status:         s.status,
		TrackingNumber: s.trackingNumber,
		ShippedAt:      s.shippedAt,
		DeliveredAt:    s.deliveredAt,
	}
}

// Decision returns the routing decision the shipment was created with.
func (s *Shipment) Decision() routing.Decision {
	return routing.Decision{
		OrderID:       s.orderID,
		Carrier:       s.carrier,
		ServiceType:   s.serviceType,
		Rule:          s.rule,
		Reason:        s.routingReason,
		EstimatedCost: s.estimatedCost,
	}
}

// AssignTrackingNumber records the carrier's tracking number once the label was printed and
// moves the shipment from PENDING to LABEL_PRINTED.
func (s *Shipment) AssignTrackingNumber(trackingNumber string, at time.Time) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if s.status != Pending {
		return errs.NewInvalidStateError("shipment", s.id.String(), s.status.String())
	}

	s.status = LabelPrinted
	s.trackingNumber = trackingNumber
	shippedAt := at
	s.shippedAt = &shippedAt
	return nil
}

// Advance moves the shipment to next. LABEL_PRINTED can only be reached through
// AssignTrackingNumber.
func (s *Shipment) Advance(next Status, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next == LabelPrinted || !s.status.CanTransitionTo(next) {
		return errs.NewInvalidStateErrorWithCause("shipment", s.id.String(), s.status.String(),
			fmt.Errorf("cannot move to %s", next))
	}

	s.status = next
	if next == Delivered {
		deliveredAt := at
		s.deliveredAt = &deliveredAt
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = id
	return nil
}

func (s *Shipment) setCarrierAndService(carrier kernel.Carrier, service kernel.ServiceType) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	if err := service.ValidateFor(carrier); err != nil {
		return err
	}
	s.carrier = carrier
	s.serviceType = service
	return nil
}

func (s *Shipment) setRoutingReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("routingReason")
	}
	s.routingReason = reason
	return nil
}

func (s *Shipment) setPackages(packages []Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}

	total := 0
	largest := kernel.SizeCode(0)
	for _, p := range packages {
		if err := p.id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("packages", errors.New("package must be created via NewPackage"))
		}
		total += p.weightGrams
		if p.sizeCode > largest {
			largest = p.sizeCode
		}
	}

	s.packages = make([]Package, len(packages))
	copy(s.packages, packages)
	s.totalWeight = total
	s.totalSize = largest
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
