package manifest

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"logistics/internal/core/domain/model/order"

	"golang.org/x/text/width"
)

// PostalFormat is how a carrier expects the 7-digit postal code.
type PostalFormat int

const (
	// PostalDigits is the bare 7 digits, e.g. 1500001.
	PostalDigits PostalFormat = iota
	// PostalHyphenated is NNN-NNNN, e.g. 150-0001.
	PostalHyphenated
)

// Format normalizes zip. Hyphens and full-width digits are accepted. Codes that do not have
// 7 digits are passed through trimmed when hyphenated output is requested.
func (f PostalFormat) Format(zip string) string {
	digits := digitsOnly(zip)
	if f == PostalDigits {
		return digits
	}
	if len(digits) != 7 {
		return strings.TrimSpace(zip)
	}
	return digits[:3] + "-" + digits[3:]
}

// jst is fixed so that delivery dates print the same on every host.
var jst = time.FixedZone("JST", 9*60*60)

// ellipsis marks a truncated description.
const ellipsis = "…"

// descriptionSeparator joins item names (読点).
const descriptionSeparator = "、"

// digitsOnly narrows full-width characters and drops everything but ASCII digits.
func digitsOnly(s string) string {
	narrow := width.Narrow.String(s)
	var b strings.Builder
	b.Grow(len(narrow))
	for _, r := range narrow {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// phone formats a phone number for label software, which accepts digits only.
func phone(s string) string {
	return digitsOnly(s)
}

// truncate cuts s to at most maxLen characters, replacing the last kept one with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + ellipsis
}

// itemNames joins every line item name.
func itemNames(o *order.Order) string {
	items := o.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}
	return strings.Join(names, descriptionSeparator)
}

// formatDate renders the delivery date in JST with layout, "" when no date was requested.
func formatDate(date *time.Time, layout string) string {
	if date == nil || date.IsZero() {
		return ""
	}
	return date.In(jst).Format(layout)
}

// codAmount is the amount to collect on delivery, "" for prepaid orders.
func codAmount(o *order.Order) string {
	if !o.IsCOD() {
		return ""
	}
	return strconv.FormatInt(o.Payment().TotalAmount, 10)
}
