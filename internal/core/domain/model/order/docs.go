// Package order provides the Order aggregate as seen by the shipping core: a snapshot of the
// order header, recipient, shipping address, payment and line items owned by the order
// management collaborator.
//
// The shipping core reads every field but writes back only the status, the assigned carrier,
// the tracking number and the shipped timestamp.
//
// Key business rules:
//   - An order needs an external order id, a recipient name and phone, a complete shipping
//     address and at least one line item
//   - Line items without weight or size code resolve to Defaults (500 g, size 60)
//   - Shipments may only be created for CONFIRMED, PROCESSING or PACKED orders
//   - Status workflow used here: CONFIRMED -> PROCESSING -> SHIPPED -> DELIVERED | RETURNED
//   - Creating a shipment moves a CONFIRMED order to PROCESSING; PROCESSING and PACKED orders
//     keep their status
package order
