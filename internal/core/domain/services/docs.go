// Package services provides the domain services of the shipping core: business logic that
// reads several aggregates or produces values no single aggregate owns.
//
// The package includes:
//   - CarrierRouter: picks a carrier and service tier for an order under a fixed, ordered rule set
//
// Manifest rendering lives in the manifest subpackage.
package services
