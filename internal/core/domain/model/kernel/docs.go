// Package kernel holds the value objects shared by every aggregate and service of the
// shipping core.
//
// The package includes:
//   - UUID: identifier of orders, shipments and packages
//   - Carrier and ServiceType: the parcel carriers the seller hands parcels to and their
//     product tiers
//   - SizeCode: the discretized girth class Japanese carriers price by
//   - TimeSlot: the shared internal delivery time-slot code
//
// All values are immutable and safe for concurrent use.
package kernel
