package manifest

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
)

var fukuyamaColumns = []string{
	"荷送人コード",
	"届先コード",
	"届先電話番号",
	"届先郵便番号",
	"届先住所1",
	"届先住所2",
	"届先会社名",
	"届先担当者",
	"個数",
	"重量",
	"配達指定日",
	"配達時間",
	"運賃区分",
	"荷札メッセージ",
	"お客様管理番号",
}

var fukuyamaTimeSlots = map[kernel.TimeSlot]string{
	kernel.TimeSlotMorning: "AM",
	kernel.TimeSlot1214:    "PM1",
	kernel.TimeSlot1416:    "PM1",
	kernel.TimeSlot1618:    "PM2",
	kernel.TimeSlot1820:    "PM2",
	kernel.TimeSlot1921:    "EVE",
}

// fukuyamaPrepaid is the 運賃区分 for freight paid by the sender (元払い).
const fukuyamaPrepaid = "1"

// FukuyamaMapper renders rows for Fukuyama Transporting's shipping data import. The sender is
// identified by the contract code configured in the label software, so no sender columns
// are filled.
type FukuyamaMapper struct{}

func (FukuyamaMapper) Carrier() kernel.Carrier {
	return kernel.CarrierFukuyama
}

func (FukuyamaMapper) Columns() []string {
	return append([]string(nil), fukuyamaColumns...)
}

func (FukuyamaMapper) MaxDescriptionLength() int {
	return 40
}

func (FukuyamaMapper) PostalFormat() PostalFormat {
	return PostalHyphenated
}

func (m FukuyamaMapper) MapRow(o *order.Order, _ shipper.Profile) Row {
	to := o.Address()
	recipient := o.Recipient()

	return newRow(fukuyamaColumns, map[string]string{
		"届先電話番号":  phone(recipient.Phone),
		"届先郵便番号":  m.PostalFormat().Format(to.ZipCode),
		"届先住所1":   to.Prefecture + to.City,
		"届先住所2":   to.Line1 + to.Line2,
		"届先会社名":   recipient.CompanyName,
		"届先担当者":   recipient.Name,
		"個数":      "1",
		"配達指定日":   formatDate(o.Delivery().Date, "2006/01/02"),
		"配達時間":    fukuyamaTimeSlots[o.Delivery().TimeSlot],
		"運賃区分":    fukuyamaPrepaid,
		"荷札メッセージ": truncate(itemNames(o), m.MaxDescriptionLength()),
		"お客様管理番号": o.ExternalOrderID(),
	})
}
