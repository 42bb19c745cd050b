package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/labelmint/labelmint/internal/config"
	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/metrics"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"go.uber.org/zap"
)

var ErrInvalidQuantity = errors.New("INVALID_QUANTITY")

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error)
	ListPayments(userID int64) ([]model.Payment, error)
}

type orderService struct {
	gateway     razorpay.Gateway
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	cfg         *config.Config
	log         *zap.Logger
	metrics     *metrics.Metrics
}

func NewOrderService(gateway razorpay.Gateway, userRepo repository.UserRepository, paymentRepo repository.PaymentRepository, cfg *config.Config, log *zap.Logger, metrics *metrics.Metrics) OrderService {
	return &orderService{gateway: gateway, userRepo: userRepo, paymentRepo: paymentRepo, cfg: cfg, log: log, metrics: metrics}
}

// CreateOrder asks the gateway for a remote order and persists the payment
// record in created state. The gateway call happens before any transaction
// opens; a gateway failure leaves no record behind.
func (s *orderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if cmd.Credits <= 0 {
		return CreateOrderResult{}, NewServiceError(constants.ErrCodeInvalidQuantity, ErrInvalidQuantity)
	}

	user, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return CreateOrderResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return CreateOrderResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	amountPaise := cmd.Credits * s.cfg.Pricing.PricePerCredit * 100

	order, err := s.gateway.CreateOrder(ctx, razorpay.CreateOrderRequest{
		Amount:         amountPaise,
		Currency:       s.cfg.Pricing.Currency,
		PaymentCapture: 1,
		Notes: map[string]string{
			"user_id": user.PublicID,
			"email":   user.Email,
			"credits": strconv.FormatInt(cmd.Credits, 10),
		},
	})
	if err != nil {
		s.log.Error("gateway order creation failed",
			zap.Error(err),
			zap.Int64("user_id", cmd.UserID),
			zap.Int64("credits", cmd.Credits),
			zap.Int64("amount_paise", amountPaise))
		s.metrics.RecordGatewayCall("create_order", "error")
		return CreateOrderResult{}, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	s.metrics.RecordGatewayCall("create_order", "success")

	payment := model.Payment{
		UserID:          user.ID,
		Credits:         cmd.Credits,
		AmountPaise:     amountPaise,
		Currency:        s.cfg.Pricing.Currency,
		RazorpayOrderID: order.ID,
		Status:          model.PaymentStatusCreated,
	}

	if err := s.paymentRepo.Create(ctx, &payment); err != nil {
		s.log.Error("error persist payment record",
			zap.Error(err),
			zap.String("order_id", order.ID))
		return CreateOrderResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordOrderCreated()

	s.log.Info("Order created",
		zap.Int64("user_id", user.ID),
		zap.String("order_id", order.ID),
		zap.Int64("credits", cmd.Credits),
		zap.Int64("amount_paise", amountPaise))

	return CreateOrderResult{
		OrderID:  order.ID,
		Amount:   amountPaise,
		Currency: s.cfg.Pricing.Currency,
		Credits:  cmd.Credits,
		Checkout: CheckoutConfig{
			KeyID:        s.cfg.Razorpay.KeyID,
			SiteName:     s.cfg.API.SiteName,
			PrefillEmail: user.Email,
		},
	}, nil
}

func (s *orderService) ListPayments(userID int64) ([]model.Payment, error) {
	payments, err := s.paymentRepo.ListByUserID(userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return payments, nil
}
