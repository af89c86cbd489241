// Package shipment provides the Shipment aggregate: one consignment handed to a carrier for
// a single order, made of one or more packages.
//
// Key business rules:
//   - Carrier and service type are fixed at creation and never change
//   - Total weight is the sum of the package weights; total size is the largest package size
//   - Delivery date and time slot are copied from the order
//   - COD amount is set only for cash-on-delivery orders
//
// Status workflow:
//
//	PENDING -> LABEL_PRINTED -> PICKED_UP -> IN_TRANSIT -> OUT_FOR_DELIVERY -> DELIVERED
//	                                         |             |
//	                                         +-------------+-> FAILED_DELIVERY | RETURNED
//
// DELIVERED, FAILED_DELIVERY and RETURNED are terminal.
package shipment
