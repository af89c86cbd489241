package order

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Defaults resolve the weight and size of line items the catalogue has no data for.
type Defaults struct {
	WeightGrams int
	SizeCode    kernel.SizeCode
}

// DefaultDefaults returns 500 g and size 60.
func DefaultDefaults() Defaults {
	return Defaults{WeightGrams: 500, SizeCode: kernel.Size60}
}

// LineItem is one product line of an order. Weight and size code are optional.
type LineItem struct {
	name        string
	sku         string
	quantity    int
	weightGrams *int
	sizeCode    *kernel.SizeCode
}

// NewLineItem validates quantity and size code. A non-positive weight or a zero size code
// is treated as unknown, so the item falls back to Defaults.
func NewLineItem(name, sku string, quantity int, weightGrams *int, sizeCode *int) (LineItem, error) {
	item := LineItem{
		name:     strings.TrimSpace(name),
		sku:      strings.TrimSpace(sku),
		quantity: quantity,
	}

	var errList []error
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if weightGrams != nil && *weightGrams > 0 {
		w := *weightGrams
		item.weightGrams = &w
	}
	if sizeCode != nil && *sizeCode != 0 {
		s, err := kernel.NewSizeCode(*sizeCode)
		if err != nil {
			errList = append(errList, err)
		} else {
			item.sizeCode = &s
		}
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) SKU() string {
	return i.sku
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// WeightGrams returns the catalogue weight of one unit, nil when unknown.
func (i LineItem) WeightGrams() *int {
	return i.weightGrams
}

// SizeCode returns the catalogue size band, nil when unknown.
func (i LineItem) SizeCode() *kernel.SizeCode {
	return i.sizeCode
}

// ResolvedWeight is the unit weight, or d.WeightGrams when unknown.
func (i LineItem) ResolvedWeight(d Defaults) int {
	if i.weightGrams == nil {
		return d.WeightGrams
	}
	return *i.weightGrams
}

// ResolvedSize is the size band, or d.SizeCode when unknown.
func (i LineItem) ResolvedSize(d Defaults) kernel.SizeCode {
	if i.sizeCode == nil {
		return d.SizeCode
	}
	return *i.sizeCode
}
