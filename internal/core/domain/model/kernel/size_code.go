package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// SizeCode is the girth class (sum of length, width and height in cm, rounded up to the next
// band) Japanese carriers price parcels by.
type SizeCode int

const (
	Size60  SizeCode = 60
	Size80  SizeCode = 80
	Size100 SizeCode = 100
	Size120 SizeCode = 120
	Size140 SizeCode = 140
	Size160 SizeCode = 160
	Size180 SizeCode = 180
)

// NewSizeCode validates that v is one of the seven bands.
func NewSizeCode(v int) (SizeCode, error) {
	s := SizeCode(v)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate rejects values that are not a band.
func (s SizeCode) Validate() error {
	if s < Size60 || s > Size180 {
		return errs.NewValueIsOutOfRangeError("sizeCode", int(s), int(Size60), int(Size180))
	}
	if (s-Size60)%20 != 0 {
		return errs.NewValueIsInvalidErrorWithCause("sizeCode", fmt.Errorf("%d is not a size band", int(s)))
	}
	return nil
}

// Int returns the band as a plain integer.
func (s SizeCode) Int() int {
	return int(s)
}
