package mocks

import (
	"context"

	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (g *Gateway) CreateOrder(ctx context.Context, request razorpay.CreateOrderRequest) (razorpay.Order, error) {
	args := g.Called(ctx, request)
	return args.Get(0).(razorpay.Order), args.Error(1)
}

func (g *Gateway) VerifyOrderSignature(orderID, paymentID, signature string) error {
	args := g.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func (g *Gateway) VerifyWebhookSignature(body []byte, signature string) error {
	args := g.Called(body, signature)
	return args.Error(0)
}
