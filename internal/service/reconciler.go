package service

import (
	"context"
	"errors"
	"time"

	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/metrics"
	"github.com/labelmint/labelmint/internal/model"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrVerificationFailed = errors.New("VERIFICATION_FAILED")

// ReconcilerService converges the gateway's verification outcome with the
// credit ledger. The client callback and the webhook are independent entry
// points; the payment row lock plus the absorbing paid status guarantee the
// ledger is credited exactly once per order no matter how often or in what
// order either arrives.
type ReconcilerService interface {
	ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error)
	// HandleWebhook never returns an error for conditions it handled
	// internally; the sender must not be made to retry.
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type reconcilerService struct {
	gateway     razorpay.Gateway
	txManager   repository.TxManager
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	log         *zap.Logger
	metrics     *metrics.Metrics
}

func NewReconcilerService(gateway razorpay.Gateway, txManager repository.TxManager, userRepo repository.UserRepository, paymentRepo repository.PaymentRepository, log *zap.Logger, metrics *metrics.Metrics) ReconcilerService {
	return &reconcilerService{gateway: gateway, txManager: txManager, userRepo: userRepo, paymentRepo: paymentRepo, log: log, metrics: metrics}
}

// ConfirmPayment is the client-callback entry point. The signature check is
// local HMAC work and runs before the transaction opens, so no lock is ever
// held across gateway interaction.
func (s *reconcilerService) ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	sigErr := s.gateway.VerifyOrderSignature(cmd.OrderID, cmd.PaymentID, cmd.Signature)

	var creditsLeft decimal.Decimal
	verificationFailed := false

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindByOrderIDAndUserForUpdate(ctx, cmd.OrderID, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return NewServiceError(constants.ErrCodeOrderNotFound, err)
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if payment.Status == model.PaymentStatusPaid {
			user, err := s.userRepo.FindByID(ctx, cmd.UserID)
			if err != nil {
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}
			creditsLeft = user.Credits

			s.log.Info("Payment already settled, callback is a no-op",
				zap.String("order_id", cmd.OrderID))
			return nil
		}

		if sigErr != nil {
			now := time.Now()
			payment.Status = model.PaymentStatusFailed
			payment.RazorpayPaymentID = &cmd.PaymentID
			payment.RazorpaySignature = &cmd.Signature
			payment.ProcessedAt = &now

			if err := s.paymentRepo.Update(ctx, &payment); err != nil {
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}

			s.metrics.RecordReconciliation("callback", "verification_failed")
			s.log.Warn("Callback signature verification failed",
				zap.String("order_id", cmd.OrderID),
				zap.String("payment_id", cmd.PaymentID))

			// Return nil so the transaction commits the failed stamp; the
			// verification error is surfaced after the commit.
			verificationFailed = true
			return nil
		}

		user, err := s.settle(ctx, &payment, cmd.PaymentID, &cmd.Signature)
		if err != nil {
			return err
		}
		creditsLeft = user.Credits

		s.metrics.RecordReconciliation("callback", "credited")
		return nil
	})
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if verificationFailed {
		return ConfirmPaymentResult{}, NewServiceError(constants.ErrCodeVerificationFailed, ErrVerificationFailed)
	}

	return ConfirmPaymentResult{CreditsLeft: creditsLeft}, nil
}

// HandleWebhook is the asynchronous server-to-server entry point. Every
// internally handled anomaly is logged and acknowledged so the sender stops
// redelivering; only unexpected storage failures surface.
func (s *reconcilerService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if err := s.gateway.VerifyWebhookSignature(body, signature); err != nil {
		s.metrics.RecordReconciliation("webhook", "bad_signature")
		s.log.Error("Webhook signature verification failed", zap.Error(err))
		return nil
	}

	event, err := razorpay.ParseWebhookEvent(body)
	if err != nil {
		s.metrics.RecordReconciliation("webhook", "bad_payload")
		s.log.Error("Webhook payload is not valid JSON", zap.Error(err))
		return nil
	}

	orderID := event.OrderID()
	if orderID == "" {
		s.metrics.RecordReconciliation("webhook", "no_order_id")
		s.log.Warn("Webhook carried no order id", zap.String("event", event.Event))
		return nil
	}

	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				s.metrics.RecordReconciliation("webhook", "unknown_order")
				s.log.Warn("Webhook references unknown order",
					zap.String("order_id", orderID),
					zap.String("event", event.Event))
				return nil
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if payment.Status == model.PaymentStatusPaid {
			s.metrics.RecordReconciliation("webhook", "already_paid")
			s.log.Info("Webhook for already settled order, no-op",
				zap.String("order_id", orderID))
			return nil
		}

		if !event.IsPaid() {
			s.metrics.RecordReconciliation("webhook", "ignored_event")
			s.log.Info("Webhook event ignored",
				zap.String("order_id", orderID),
				zap.String("event", event.Event))
			return nil
		}

		// The whole-body signature already authenticated this delivery;
		// the webhook path does not carry a per-order signature. A failed
		// callback does not block the webhook from settling the order.
		user, err := s.settle(ctx, &payment, event.PaymentID(), nil)
		if err != nil {
			return err
		}

		s.metrics.RecordReconciliation("webhook", "credited")
		s.log.Info("Webhook credited order",
			zap.String("order_id", orderID),
			zap.Int64("credits", payment.Credits),
			zap.Int64("user_id", user.ID),
			zap.String("credits_left", user.Credits.String()))
		return nil
	})
}

// settle performs the single created->paid transition both entry points
// converge on: stamp the record, then credit the ledger, in the caller's
// transaction while the payment row is locked.
func (s *reconcilerService) settle(ctx context.Context, payment *model.Payment, paymentID string, signature *string) (model.User, error) {
	now := time.Now()
	payment.Status = model.PaymentStatusPaid
	if paymentID != "" {
		payment.RazorpayPaymentID = &paymentID
	}
	if signature != nil {
		payment.RazorpaySignature = signature
	}
	payment.ProcessedAt = &now

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user, err := s.userRepo.FindByIDForUpdate(ctx, payment.UserID)
	if err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user.Credits = user.Credits.Add(decimal.NewFromInt(payment.Credits))

	if err := s.userRepo.UpdateCredits(ctx, user.ID, user.Credits); err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordCreditsGranted(payment.Credits)

	return user, nil
}
