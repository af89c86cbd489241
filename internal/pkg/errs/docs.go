// Package errs provides the typed errors shared by the routing, manifest and shipment code.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the details an operator needs to act without re-querying
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The kinds map onto the failure taxonomy of the service:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures,
//     the caller must correct the input and retry
//   - ObjectNotFoundError: a referenced order or shipment is absent, or a batch is empty
//   - InvalidStateError: an aggregate is not in a status that allows the requested operation
package errs
