package order

// PaymentMethod is how the customer pays. Only COD changes routing and manifests.
type PaymentMethod string

const (
	PaymentCreditCard       PaymentMethod = "CREDIT_CARD"
	PaymentConvenienceStore PaymentMethod = "CONVENIENCE_STORE" // コンビニ払い
	PaymentBankTransfer     PaymentMethod = "BANK_TRANSFER"     // 銀行振込
	PaymentCOD              PaymentMethod = "COD"               // 代引き
	PaymentAmazonPay        PaymentMethod = "AMAZON_PAY"
	PaymentRakutenPay       PaymentMethod = "RAKUTEN_PAY"
	PaymentPayPay           PaymentMethod = "PAYPAY"
)

// Payment holds the method and the order total in yen (tax included).
type Payment struct {
	Method      PaymentMethod
	TotalAmount int64
}

// IsCOD reports whether the carrier collects the total on delivery.
func (p Payment) IsCOD() bool {
	return p.Method == PaymentCOD
}
