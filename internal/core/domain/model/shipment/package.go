package shipment

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Package is one physical box (個口) of a shipment.
type Package struct {
	id          kernel.UUID
	weightGrams int
	sizeCode    kernel.SizeCode
	skus        []string
}

// NewPackage validates weight and size band. SKUs list the products packed in the box.
func NewPackage(id kernel.UUID, weightGrams int, sizeCode kernel.SizeCode, skus []string) (Package, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if weightGrams <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weightGrams", fmt.Errorf("%d is not greater than 0", weightGrams)))
	}
	if err := sizeCode.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Package{}, err
	}

	return Package{
		id:          id,
		weightGrams: weightGrams,
		sizeCode:    sizeCode,
		skus:        slices.Clone(skus),
	}, nil
}

func (p Package) ID() kernel.UUID {
	return p.id
}

func (p Package) WeightGrams() int {
	return p.weightGrams
}

func (p Package) SizeCode() kernel.SizeCode {
	return p.sizeCode
}

func (p Package) SKUs() []string {
	return slices.Clone(p.skus)
}
