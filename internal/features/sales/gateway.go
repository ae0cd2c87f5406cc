package sales

// PaymentOrder is a gateway-side order awaiting payment.
type PaymentOrder struct {
	OrderID  string
	Amount   int64
	Currency string
}

// PaymentGateway abstracts the payment provider. Amounts are minor units
// (paise).
type PaymentGateway interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string) (*PaymentOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}
