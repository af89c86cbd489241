package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the shipping core's view of a customer order.
//
// Order follows these invariants:
//   - Has a valid identifier and a non-empty external order id
//   - Has a recipient with name and phone and a complete shipping address
//   - Has at least one line item
//   - Only the fulfilment fields (status, assigned carrier, tracking number, shipped at)
//     change after construction
type Order struct {
	id              kernel.UUID
	externalOrderID string
	recipient       Recipient
	address         Address
	payment         Payment
	delivery        Delivery
	items           []LineItem

	status          Status
	assignedCarrier kernel.Carrier
	trackingNumber  string
	shippedAt       *time.Time

	isConstructed bool
}

// Fulfilment is the part of an order the shipping core writes back.
type Fulfilment struct {
	Status          Status
	AssignedCarrier kernel.Carrier
	TrackingNumber  string
	ShippedAt       *time.Time
}

// NewOrder creates a CONFIRMED order, the state in which orders reach the shipping core.
//
// Example:
//
//	recipient, _ := order.NewRecipient("山田 太郎", "090-1234-5678", "")
//	address, _ := order.NewAddress("150-0001", "東京都", "渋谷区", "神宮前1-1-1", "")
//	item, _ := order.NewLineItem("Tシャツ", "TS-001", 2, nil, nil)
//	o, err := order.NewOrder(kernel.NewUUID(), "EC-1001", recipient, address,
//	    order.Payment{Method: order.PaymentCreditCard, TotalAmount: 3980},
//	    order.Delivery{}, []order.LineItem{item})
func NewOrder(
	id kernel.UUID,
	externalOrderID string,
	recipient Recipient,
	address Address,
	payment Payment,
	delivery Delivery,
	items []LineItem,
) (*Order, error) {
	return RestoreOrder(id, externalOrderID, recipient, address, payment, delivery, items, Fulfilment{Status: Confirmed})
}

// RestoreOrder rebuilds an order in any status, e.g. from persistence.
func RestoreOrder(
	id kernel.UUID,
	externalOrderID string,
	recipient Recipient,
	address Address,
	payment Payment,
	delivery Delivery,
	items []LineItem,
	fulfilment Fulfilment,
) (*Order, error) {
	o := &Order{
		recipient:       recipient,
		address:         address,
		payment:         payment,
		delivery:        delivery,
		assignedCarrier: fulfilment.AssignedCarrier,
		trackingNumber:  fulfilment.TrackingNumber,
		shippedAt:       fulfilment.ShippedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalOrderID(externalOrderID),
		o.setRecipient(recipient),
		o.setAddress(address),
		o.setPayment(payment),
		o.setItems(items),
		o.setStatus(fulfilment.Status),
		o.setAssignedCarrier(fulfilment.AssignedCarrier),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalOrderID is the marketplace order number printed on labels as the customer reference.
func (o *Order) ExternalOrderID() string {
	return o.externalOrderID
}

func (o *Order) Recipient() Recipient {
	return o.recipient
}

func (o *Order) Address() Address {
	return o.address
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Delivery() Delivery {
	return o.delivery
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

// AssignedCarrier is empty until a shipment was created.
func (o *Order) AssignedCarrier() kernel.Carrier {
	return o.assignedCarrier
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// Fulfilment returns the fields the shipping core writes back.
func (o *Order) Fulfilment() Fulfilment {
	return Fulfilment{
		Status:          o.status,
		AssignedCarrier: o.assignedCarrier,
		TrackingNumber:  o.trackingNumber,
		ShippedAt:       o.shippedAt,
	}
}

// IsBusiness reports whether the order goes to a company.
func (o *Order) IsBusiness() bool {
	return o.recipient.IsBusiness()
}

// IsCOD reports whether the carrier collects payment on delivery.
func (o *Order) IsCOD() bool {
	return o.payment.IsCOD()
}

// TotalWeight is the sum of unit weight times quantity, in grams.
func (o *Order) TotalWeight(d Defaults) int {
	total := 0
	for _, item := range o.items {
		total += item.ResolvedWeight(d) * item.quantity
	}
	return total
}

// MaxSizeCode is the largest size band among the line items.
func (o *Order) MaxSizeCode(d Defaults) kernel.SizeCode {
	largest := kernel.SizeCode(0)
	for _, item := range o.items {
		if s := item.ResolvedSize(d); s > largest {
			largest = s
		}
	}
	if largest == 0 {
		return d.SizeCode
	}
	return largest
}

// ValidateShippable returns an InvalidStateError unless a shipment may be created for the order.
func (o *Order) ValidateShippable() error {
	if !o.status.IsShippable() {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	return nil
}

// StartProcessing records the carrier chosen for the order's shipment and moves a CONFIRMED
// order to PROCESSING.
func (o *Order) StartProcessing(carrier kernel.Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	next, ok := o.status.StartProcessing()
	if !ok {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	o.status = next
	o.assignedCarrier = carrier
	return nil
}

// Ship marks the order as handed to the carrier.
func (o *Order) Ship(trackingNumber string, at time.Time) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	next, ok := o.status.Ship()
	if !ok {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	o.status = next
	o.trackingNumber = trackingNumber
	shippedAt := at
	o.shippedAt = &shippedAt
	return nil
}

// Deliver marks a SHIPPED order as DELIVERED.
func (o *Order) Deliver() error {
	next, ok := o.status.Deliver()
	if !ok {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	o.status = next
	return nil
}

// Return marks a SHIPPED order as RETURNED to the sender.
func (o *Order) Return() error {
	next, ok := o.status.Return()
	if !ok {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalOrderID(externalOrderID string) error {
	externalOrderID = strings.TrimSpace(externalOrderID)
	if externalOrderID == "" {
		return errs.NewValueIsRequiredError("externalOrderId")
	}
	o.externalOrderID = externalOrderID
	return nil
}

func (o *Order) setRecipient(r Recipient) error {
	var errList []error
	if r.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerName"))
	}
	if r.Phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerPhone"))
	}
	return errors.Join(errList...)
}

func (o *Order) setAddress(a Address) error {
	var errList []error
	if a.ZipCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingZipCode"))
	}
	if a.Prefecture == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingPrefecture"))
	}
	if a.City == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingCity"))
	}
	if a.Line1 == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingAddress1"))
	}
	return errors.Join(errList...)
}

func (o *Order) setPayment(p Payment) error {
	if strings.TrimSpace(string(p.Method)) == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if p.TotalAmount < 0 {
		return errs.NewValueIsOutOfRangeError("totalAmount", p.TotalAmount, 0, "unbounded")
	}
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.quantity <= 0 {
			return errs.NewValueIsRequiredErrorWithCause("items", errors.New("line item must be created via NewLineItem"))
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setAssignedCarrier(c kernel.Carrier) error {
	if c == "" {
		return nil
	}
	return c.Validate()
}
