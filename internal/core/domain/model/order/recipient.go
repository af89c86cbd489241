package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Recipient is the consignee. A non-blank CompanyName marks a B2B order.
type Recipient struct {
	Name        string
	Phone       string
	CompanyName string
}

// NewRecipient requires a name and a phone number.
func NewRecipient(name, phone, companyName string) (Recipient, error) {
	r := Recipient{
		Name:        strings.TrimSpace(name),
		Phone:       strings.TrimSpace(phone),
		CompanyName: strings.TrimSpace(companyName),
	}

	var errList []error
	if r.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerName"))
	}
	if r.Phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerPhone"))
	}
	if err := errors.Join(errList...); err != nil {
		return Recipient{}, err
	}

	return r, nil
}

// IsBusiness reports whether the order is addressed to a company.
func (r Recipient) IsBusiness() bool {
	return r.CompanyName != ""
}

// Address is a Japanese shipping address. Line2 (building, room) is optional.
type Address struct {
	ZipCode    string
	Prefecture string
	City       string
	Line1      string
	Line2      string
}

// NewAddress requires zip code, prefecture, city and first address line.
func NewAddress(zipCode, prefecture, city, line1, line2 string) (Address, error) {
	a := Address{
		ZipCode:    strings.TrimSpace(zipCode),
		Prefecture: strings.TrimSpace(prefecture),
		City:       strings.TrimSpace(city),
		Line1:      strings.TrimSpace(line1),
		Line2:      strings.TrimSpace(line2),
	}

	var errList []error
	if a.ZipCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingZipCode"))
	}
	if a.Prefecture == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingPrefecture"))
	}
	if a.City == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingCity"))
	}
	if a.Line1 == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingAddress1"))
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Delivery holds the customer's requested delivery date and time slot, both optional.
type Delivery struct {
	Date     *time.Time
	TimeSlot kernel.TimeSlot
}
