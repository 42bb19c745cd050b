package v1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labelmint/labelmint/internal/api/contract"
	"github.com/labelmint/labelmint/internal/api/validator"
	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/metrics"
	"github.com/labelmint/labelmint/internal/repository"
	"github.com/labelmint/labelmint/internal/service"
	"go.uber.org/zap"
)

const webhookSignatureHeader = "X-Razorpay-Signature"

type Handler struct {
	logger     *zap.Logger
	users      service.UserService
	orders     service.OrderService
	reconciler service.ReconcilerService
	labels     service.LabelService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(logger *zap.Logger, users service.UserService, orders service.OrderService, reconciler service.ReconcilerService, labels service.LabelService, XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		users:      users,
		orders:     orders,
		reconciler: reconciler,
		labels:     labels,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var handlerRequest CreateUserRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	result, err := h.users.CreateUser(c.UserContext(), service.CreateUserCommand{Email: handlerRequest.Email})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "user created", Result: result})
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.Response{
			Code: constants.ErrCodeValidationFailed, Message: "invalid user id"})
	}

	profile, err := h.users.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: profile})
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest CreateOrderRequest

	validationStart := time.Now()
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("create_order", time.Since(validationStart))

	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CreateOrderCommand{
		UserID:  handlerRequest.UserID,
		Credits: handlerRequest.Credits,
	}

	result, err := h.orders.CreateOrder(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.logger.Info("Order creation handled",
		zap.Int64("user_id", cmd.UserID),
		zap.String("order_id", result.OrderID),
		zap.Duration("duration", time.Since(start)))

	return c.JSON(contract.Response{Code: "success", Message: "order created", Result: result})
}

func (h *Handler) ListPayments(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.Response{
			Code: constants.ErrCodeValidationFailed, Message: "invalid user id"})
	}

	payments, err := h.orders.ListPayments(userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: payments})
}

func (h *Handler) ConfirmPayment(c *fiber.Ctx) error {
	var handlerRequest ConfirmPaymentRequest

	validationStart := time.Now()
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("confirm_payment", time.Since(validationStart))

	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.ConfirmPaymentCommand{
		UserID:    handlerRequest.UserID,
		OrderID:   handlerRequest.RazorpayOrderID,
		PaymentID: handlerRequest.RazorpayPaymentID,
		Signature: handlerRequest.RazorpaySignature,
	}

	result, err := h.reconciler.ConfirmPayment(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "payment confirmed", Result: result})
}

// RazorpayWebhook acknowledges every delivery the reconciler handled, even
// the ones it rejected internally; only storage failures surface as 500 so
// the sender redelivers later.
func (h *Handler) RazorpayWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(webhookSignatureHeader)

	if err := h.reconciler.HandleWebhook(c.UserContext(), body, signature); err != nil {
		h.logger.Error("Webhook processing failed", zap.Error(err))
		return err
	}

	return c.JSON(fiber.Map{"ok": true, "msg": "accepted"})
}

func (h *Handler) CreateLabels(c *fiber.Ctx) error {
	var handlerRequest CreateLabelsRequest

	validationStart := time.Now()
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("create_labels", time.Since(validationStart))

	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CreateLabelsCommand{
		UserID:   handlerRequest.UserID,
		Name:     handlerRequest.Name,
		SkuType:  handlerRequest.SkuType,
		Category: handlerRequest.Category,
		Units:    handlerRequest.Units,
	}

	result, err := h.labels.CreateLabels(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "labels created", Result: result})
}

func (h *Handler) ListLabels(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.Response{
			Code: constants.ErrCodeValidationFailed, Message: "invalid user id"})
	}

	filter := repository.LabelFilter{
		Name:     c.Query("name"),
		SkuType:  c.Query("type"),
		Category: c.Query("category"),
	}

	labels, err := h.labels.ListLabels(userID, filter)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: labels})
}
