package manifest

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
)

var japanPostColumns = []string{
	"お届け先郵便番号",
	"お届け先住所",
	"お届け先氏名",
	"お届け先電話番号",
	"ご依頼主郵便番号",
	"ご依頼主住所",
	"ご依頼主氏名",
	"ご依頼主電話番号",
	"品名",
	"配達希望日",
	"配達希望時間帯",
	"代金引換",
	"代金引換金額",
	"お客様管理番号",
}

var japanPostTimeSlots = map[kernel.TimeSlot]string{
	kernel.TimeSlotMorning: "0812",
	kernel.TimeSlot1214:    "1214",
	kernel.TimeSlot1416:    "1416",
	kernel.TimeSlot1618:    "1618",
	kernel.TimeSlot1820:    "1820",
	kernel.TimeSlot1921:    "1921",
}

// JapanPostMapper renders rows for Yu-Pack print software (ゆうプリR).
type JapanPostMapper struct{}

func (JapanPostMapper) Carrier() kernel.Carrier {
	return kernel.CarrierJapanPost
}

func (JapanPostMapper) Columns() []string {
	return append([]string(nil), japanPostColumns...)
}

func (JapanPostMapper) MaxDescriptionLength() int {
	return 30
}

func (JapanPostMapper) PostalFormat() PostalFormat {
	return PostalHyphenated
}

func (m JapanPostMapper) MapRow(o *order.Order, from shipper.Profile) Row {
	to := o.Address()
	recipient := o.Recipient()

	cod := "0"
	if o.IsCOD() {
		cod = "1"
	}

	return newRow(japanPostColumns, map[string]string{
		"お届け先郵便番号": m.PostalFormat().Format(to.ZipCode),
		"お届け先住所":   to.Prefecture + to.City + to.Line1 + to.Line2,
		"お届け先氏名":   recipient.Name,
		"お届け先電話番号": phone(recipient.Phone),
		"ご依頼主郵便番号": m.PostalFormat().Format(from.ZipCode),
		"ご依頼主住所":   from.Prefecture + from.City + from.Address,
		"ご依頼主氏名":   from.Name,
		"ご依頼主電話番号": phone(from.Phone),
		"品名":       truncate(itemNames(o), m.MaxDescriptionLength()),
		"配達希望日":    formatDate(o.Delivery().Date, "1/2"),
		"配達希望時間帯":  japanPostTimeSlots[o.Delivery().TimeSlot],
		"代金引換":     cod,
		"代金引換金額":   codAmount(o),
		"お客様管理番号":  o.ExternalOrderID(),
	})
}
