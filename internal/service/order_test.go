package service_test

import (
	"context"
	"testing"

	"github.com/labelmint/labelmint/internal/config"
	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/mocks"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/internal/service"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func orderTestConfig() *config.Config {
	return &config.Config{
		API:      config.API{SiteName: "LabelMint"},
		Razorpay: razorpay.Config{KeyID: "rzp_test_key"},
		Pricing:  config.Pricing{PricePerCredit: 50, Currency: "INR"},
	}
}

func TestOrder_CreateOrder(t *testing.T) {
	logger := zap.NewNop()

	user := model.User{
		ID:       42,
		Email:    "buyer@example.com",
		PublicID: "1a2b3c4d-9e8f-4a5b-8c7d-0e1f2a3b4c5d",
		Credits:  decimal.Zero,
	}

	cmd := service.CreateOrderCommand{UserID: 42, Credits: 5}

	t.Run("creates gateway order and persists payment record", func(t *testing.T) {
		mockGateway := &mocks.Gateway{}
		mockUserRepo := &mocks.UserRepository{}
		mockPaymentRepo := &mocks.PaymentRepository{}

		svc := service.NewOrderService(mockGateway, mockUserRepo, mockPaymentRepo, orderTestConfig(), logger, testMetrics)

		mockUserRepo.On("FindByID", context.Background(), int64(42)).Return(user, nil)

		mockGateway.On("CreateOrder", context.Background(),
			mock.MatchedBy(func(req razorpay.CreateOrderRequest) bool {
				return req.Amount == 25000 &&
					req.Currency == "INR" &&
					req.PaymentCapture == 1 &&
					req.Notes["user_id"] == user.PublicID &&
					req.Notes["email"] == user.Email &&
					req.Notes["credits"] == "5"
			})).Return(razorpay.Order{ID: "order_abc123", Amount: 25000, Currency: "INR"}, nil)

		mockPaymentRepo.On("Create", context.Background(),
			mock.MatchedBy(func(p *model.Payment) bool {
				return p.UserID == 42 &&
					p.Credits == 5 &&
					p.AmountPaise == 25000 &&
					p.RazorpayOrderID == "order_abc123" &&
					p.Status == model.PaymentStatusCreated
			})).Return(nil)

		result, err := svc.CreateOrder(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, "order_abc123", result.OrderID)
		assert.Equal(t, int64(25000), result.Amount)
		assert.Equal(t, "INR", result.Currency)
		assert.Equal(t, "rzp_test_key", result.Checkout.KeyID)
		assert.Equal(t, "LabelMint", result.Checkout.SiteName)
		assert.Equal(t, user.Email, result.Checkout.PrefillEmail)

		mockGateway.AssertExpectations(t)
		mockPaymentRepo.AssertExpectations(t)
	})

	t.Run("rejects non positive credit quantity", func(t *testing.T) {
		mockGateway := &mocks.Gateway{}
		mockUserRepo := &mocks.UserRepository{}
		mockPaymentRepo := &mocks.PaymentRepository{}

		svc := service.NewOrderService(mockGateway, mockUserRepo, mockPaymentRepo, orderTestConfig(), logger, testMetrics)

		_, err := svc.CreateOrder(context.Background(), service.CreateOrderCommand{UserID: 42, Credits: 0})

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeInvalidQuantity, serviceErr.Code)

		mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		mockPaymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("gateway failure leaves no payment record behind", func(t *testing.T) {
		mockGateway := &mocks.Gateway{}
		mockUserRepo := &mocks.UserRepository{}
		mockPaymentRepo := &mocks.PaymentRepository{}

		svc := service.NewOrderService(mockGateway, mockUserRepo, mockPaymentRepo, orderTestConfig(), logger, testMetrics)

		mockUserRepo.On("FindByID", context.Background(), int64(42)).Return(user, nil)
		mockGateway.On("CreateOrder", context.Background(),
			mock.AnythingOfType("razorpay.CreateOrderRequest")).
			Return(razorpay.Order{}, razorpay.ErrGateway)

		_, err := svc.CreateOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeGatewayError, serviceErr.Code)

		mockPaymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is rejected before gateway call", func(t *testing.T) {
		mockGateway := &mocks.Gateway{}
		mockUserRepo := &mocks.UserRepository{}
		mockPaymentRepo := &mocks.PaymentRepository{}

		svc := service.NewOrderService(mockGateway, mockUserRepo, mockPaymentRepo, orderTestConfig(), logger, testMetrics)

		mockUserRepo.On("FindByID", context.Background(), int64(42)).
			Return(model.User{}, repository.ErrUserNotFound)

		_, err := svc.CreateOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)

		mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}
