package sales

import (
	"errors"
	"fmt"

	"collabriq-backend/internal/config"

	razorpay "github.com/razorpay/razorpay-go"
	razorpay_utils "github.com/razorpay/razorpay-go/utils"
)

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway() *RazorpayGateway {
	env := config.GetEnv()

	return &RazorpayGateway{
		client: razorpay.NewClient(env.RazorpayKeyID, env.RazorpayKeySecret),
	}
}

func (g *RazorpayGateway) CreateOrder(
	amountMinorUnits int64,
	currency, receipt string,
) (*PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return nil, errors.New("payment gateway returned no order id")
	}

	return &PaymentOrder{
		OrderID:  orderID,
		Amount:   amountMinorUnits,
		Currency: currency,
	}, nil
}

func (g *RazorpayGateway) VerifyPaymentSignature(
	orderID, paymentID, signature string,
) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	return razorpay_utils.VerifyPaymentSignature(
		params, signature, config.GetEnv().RazorpayKeySecret,
	)
}
