package sales

import (
	"fmt"
	"sync"
)

// FakeGateway stands in for Razorpay in tests. Orders succeed, signatures
// matching "valid-<orderID>" verify.
type FakeGateway struct {
	mu            sync.Mutex
	CreatedOrders []PaymentOrder
}

func (g *FakeGateway) CreateOrder(
	amountMinorUnits int64,
	currency, receipt string,
) (*PaymentOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	order := PaymentOrder{
		OrderID:  fmt.Sprintf("order_fake_%d", len(g.CreatedOrders)+1),
		Amount:   amountMinorUnits,
		Currency: currency,
	}

	g.CreatedOrders = append(g.CreatedOrders, order)

	return &order, nil
}

func (g *FakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return signature == "valid-"+orderID
}

func (g *FakeGateway) OrderCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.CreatedOrders)
}
