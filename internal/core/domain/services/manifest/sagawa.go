package manifest

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
)

var sagawaColumns = []string{
	"住所録コード",
	"お届け先電話番号",
	"お届け先郵便番号",
	"お届け先住所１",
	"お届け先住所２",
	"お届け先住所３",
	"お届け先名",
	"お届け先名カナ",
	"依頼主電話番号",
	"依頼主郵便番号",
	"依頼主住所１",
	"依頼主住所２",
	"依頼主名",
	"品名１",
	"品名２",
	"個数",
	"重量",
	"配達日",
	"配達時間帯",
	"代引き金額",
	"お届け先コード",
	"お客様管理番号",
	"請求先コード",
	"運賃管理番号",
	"元着区分",
	"記事",
}

var sagawaTimeSlots = map[kernel.TimeSlot]string{
	kernel.TimeSlotMorning: "01",
	kernel.TimeSlot1214:    "02",
	kernel.TimeSlot1416:    "03",
	kernel.TimeSlot1618:    "04",
	kernel.TimeSlot1820:    "05",
	kernel.TimeSlot1921:    "06",
}

// SagawaMapper renders rows for Sagawa e-Hiden II (e飛伝Ⅱ).
type SagawaMapper struct{}

func (SagawaMapper) Carrier() kernel.Carrier {
	return kernel.CarrierSagawa
}

func (SagawaMapper) Columns() []string {
	return append([]string(nil), sagawaColumns...)
}

func (SagawaMapper) MaxDescriptionLength() int {
	return 30
}

func (SagawaMapper) PostalFormat() PostalFormat {
	return PostalDigits
}

func (m SagawaMapper) MapRow(o *order.Order, from shipper.Profile) Row {
	to := o.Address()
	recipient := o.Recipient()

	return newRow(sagawaColumns, map[string]string{
		"お届け先電話番号": phone(recipient.Phone),
		"お届け先郵便番号": m.PostalFormat().Format(to.ZipCode),
		"お届け先住所１":  to.Prefecture + to.City,
		"お届け先住所２":  to.Line1,
		"お届け先住所３":  to.Line2,
		"お届け先名":    recipient.Name,
		"依頼主電話番号":  phone(from.Phone),
		"依頼主郵便番号":  m.PostalFormat().Format(from.ZipCode),
		"依頼主住所１":   from.Prefecture + from.City,
		"依頼主住所２":   from.Address,
		"依頼主名":     from.Name,
		"品名１":      truncate(itemNames(o), m.MaxDescriptionLength()),
		"個数":       "1",
		"配達日":      formatDate(o.Delivery().Date, "2006/01/02"),
		"配達時間帯":    sagawaTimeSlots[o.Delivery().TimeSlot],
		"代引き金額":    codAmount(o),
		"お客様管理番号":  o.ExternalOrderID(),
		"元着区分":     "0",
	})
}
