package sales

type SetSaleRequestDTO struct {
	ForSale bool `json:"forSale"`
	// Price in minor units, required when listing for sale.
	Price *int64 `json:"price"`
}

type InitiatePurchaseResponseDTO struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

type CompletePurchaseRequestDTO struct {
	OrderID   string `json:"orderId"   binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
