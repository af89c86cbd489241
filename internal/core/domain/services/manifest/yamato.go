package manifest

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
)

var yamatoColumns = []string{
	"お届け先電話番号",
	"お届け先郵便番号",
	"お届け先住所",
	"お届け先会社・部門１",
	"お届け先会社・部門２",
	"お届け先名",
	"お届け先名略称カナ",
	"ご依頼主電話番号",
	"ご依頼主郵便番号",
	"ご依頼主住所",
	"ご依頼主名",
	"ご依頼主名略称カナ",
	"品名１",
	"品名２",
	"荷扱い１",
	"荷扱い２",
	"お届け予定日",
	"配達時間帯",
	"送り状種類",
	"コレクト代金引換額（税込）",
	"コレクト内消費税額等",
	"クロネコＤＭ便",
	"営業所止置き",
	"ご請求先顧客コード",
	"ご請求先分類コード",
	"運賃管理番号",
	"お届け先コード",
	"お届け先電話番号枝番",
	"お客様管理番号",
	"お届け先メールアドレス",
	"入力機種",
	"配達完了通知",
}

// yamatoNoPreference is B2 Cloud's code for "any time".
const yamatoNoPreference = "0"

// B2 Cloud has no 12-14 slot; it is sent as 14-16.
var yamatoTimeSlots = map[kernel.TimeSlot]string{
	kernel.TimeSlotMorning: "0812",
	kernel.TimeSlot1214:    "1416",
	kernel.TimeSlot1416:    "1416",
	kernel.TimeSlot1618:    "1618",
	kernel.TimeSlot1820:    "1820",
	kernel.TimeSlot1921:    "1921",
}

const (
	yamatoSlipPrepaid = "0" // 発払い
	yamatoSlipCollect = "4" // コレクト
)

// yamatoDefaultDescription is printed when the first item has no name.
const yamatoDefaultDescription = "商品"

// YamatoMapper renders rows for Yamato B2 Cloud (送り状発行システムB2クラウド).
type YamatoMapper struct{}

func (YamatoMapper) Carrier() kernel.Carrier {
	return kernel.CarrierYamato
}

func (YamatoMapper) Columns() []string {
	return append([]string(nil), yamatoColumns...)
}

func (YamatoMapper) MaxDescriptionLength() int {
	return 25
}

func (YamatoMapper) PostalFormat() PostalFormat {
	return PostalDigits
}

func (m YamatoMapper) MapRow(o *order.Order, from shipper.Profile) Row {
	to := o.Address()
	recipient := o.Recipient()
	items := o.Items()

	description := yamatoDefaultDescription
	if len(items) > 0 && items[0].Name() != "" {
		description = items[0].Name()
	}
	var more string
	if len(items) > 1 {
		more = "他"
	}

	slot, ok := yamatoTimeSlots[o.Delivery().TimeSlot]
	if !ok {
		slot = yamatoNoPreference
	}

	slip := yamatoSlipPrepaid
	if o.IsCOD() {
		slip = yamatoSlipCollect
	}

	return newRow(yamatoColumns, map[string]string{
		"お届け先電話番号":      phone(recipient.Phone),
		"お届け先郵便番号":      m.PostalFormat().Format(to.ZipCode),
		"お届け先住所":        to.Prefecture + to.City + to.Line1,
		"お届け先会社・部門１":    recipient.CompanyName,
		"お届け先名":         recipient.Name,
		"ご依頼主電話番号":      phone(from.Phone),
		"ご依頼主郵便番号":      m.PostalFormat().Format(from.ZipCode),
		"ご依頼主住所":        from.Prefecture + from.City + from.Address,
		"ご依頼主名":         from.Name,
		"品名１":           truncate(description, m.MaxDescriptionLength()),
		"品名２":           more,
		"お届け予定日":        formatDate(o.Delivery().Date, "20060102"),
		"配達時間帯":         slot,
		"送り状種類":         slip,
		"コレクト代金引換額（税込）": codAmount(o),
		"クロネコＤＭ便":       "0",
		"営業所止置き":        "0",
		"お客様管理番号":       o.ExternalOrderID(),
	})
}
