// Package guard provides ConstructorGuard, a marker embedded in value objects, commands and
// queries so that zero values created with a struct literal can be told apart from values built
// by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Example usage:
//
//	var ErrParcelNotConstructed = errors.New("Parcel must be created via NewParcel")
//
//	type Parcel struct {
//	    weightGrams int
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewParcel(weightGrams int) (Parcel, error) {
//	    if weightGrams <= 0 {
//	        return Parcel{}, errors.New("weight must be positive")
//	    }
//	    return Parcel{weightGrams: weightGrams, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, validationError otherwise
// (ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
