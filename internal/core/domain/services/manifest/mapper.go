package manifest

import (
	"fmt"
	"slices"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
	"logistics/internal/pkg/errs"
)

// FieldMapper turns one order into one row of a carrier's import file. Implementations are
// stateless and safe for concurrent use.
type FieldMapper interface {
	Carrier() kernel.Carrier
	// Columns returns the header, in file order.
	Columns() []string
	MapRow(o *order.Order, from shipper.Profile) Row
	// MaxDescriptionLength is the number of characters the goods description column accepts.
	MaxDescriptionLength() int
	PostalFormat() PostalFormat
}

// UnsupportedCarrierError is returned for a carrier without a registered mapper. It matches
// both errs.ErrInvalidState and errs.ErrObjectNotFound.
type UnsupportedCarrierError struct {
	Carrier kernel.Carrier
}

func (e *UnsupportedCarrierError) Error() string {
	return fmt.Sprintf("unsupported carrier: %s has no manifest format", string(e.Carrier))
}

func (e *UnsupportedCarrierError) Unwrap() []error {
	return []error{errs.ErrInvalidState, errs.ErrObjectNotFound}
}

// Registry holds one FieldMapper per carrier.
type Registry struct {
	mu      sync.RWMutex
	mappers map[kernel.Carrier]FieldMapper
}

// NewRegistry registers the given mappers. A later mapper replaces an earlier one for the
// same carrier.
func NewRegistry(mappers ...FieldMapper) *Registry {
	r := &Registry{mappers: make(map[kernel.Carrier]FieldMapper, len(mappers))}
	for _, m := range mappers {
		r.Register(m)
	}
	return r
}

// DefaultRegistry registers the four supported carriers.
func DefaultRegistry() *Registry {
	return NewRegistry(SagawaMapper{}, YamatoMapper{}, FukuyamaMapper{}, JapanPostMapper{})
}

// Register adds or replaces the mapper for m.Carrier().
func (r *Registry) Register(m FieldMapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers[m.Carrier()] = m
}

// Get returns the mapper for carrier or an UnsupportedCarrierError.
func (r *Registry) Get(carrier kernel.Carrier) (FieldMapper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mappers[carrier]
	if !ok {
		return nil, &UnsupportedCarrierError{Carrier: carrier}
	}
	return m, nil
}

// Carriers lists the registered carriers, sorted.
func (r *Registry) Carriers() []kernel.Carrier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	carriers := make([]kernel.Carrier, 0, len(r.mappers))
	for c := range r.mappers {
		carriers = append(carriers, c)
	}
	slices.Sort(carriers)
	return carriers
}
