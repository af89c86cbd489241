// Package shipper describes the sender printed on every label.
package shipper

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
)

// Profile is the sender identity (ご依頼主) of the seller's warehouse.
type Profile struct {
	Name       string
	Phone      string
	ZipCode    string
	Prefecture string
	City       string
	Address    string
}

// NewProfile trims every field and requires all of them.
func NewProfile(name, phone, zipCode, prefecture, city, address string) (Profile, error) {
	p := Profile{
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		ZipCode:    strings.TrimSpace(zipCode),
		Prefecture: strings.TrimSpace(prefecture),
		City:       strings.TrimSpace(city),
		Address:    strings.TrimSpace(address),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate reports every empty field.
func (p Profile) Validate() error {
	var errList []error
	for _, f := range []struct{ name, value string }{
		{"shipperName", p.Name},
		{"shipperPhone", p.Phone},
		{"shipperZipCode", p.ZipCode},
		{"shipperPrefecture", p.Prefecture},
		{"shipperCity", p.City},
		{"shipperAddress", p.Address},
	} {
		if f.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(f.name))
		}
	}
	return errors.Join(errList...)
}
