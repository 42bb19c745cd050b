package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/labelmint/labelmint/internal/constants"
	"github.com/labelmint/labelmint/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeInvalidQuantity:     fiber.StatusBadRequest,
		constants.ErrCodeInvalidPayload:      fiber.StatusBadRequest,
		constants.ErrCodeVerificationFailed:  fiber.StatusBadRequest,
		constants.ErrCodeOrderNotFound:       fiber.StatusBadRequest,
		constants.ErrCodeUserExisted:         fiber.StatusConflict,
		constants.ErrCodeUserNotFound:        fiber.StatusNotFound,
		constants.ErrCodeInsufficientCredits: fiber.StatusPaymentRequired,
		constants.ErrCodeGatewayError:        fiber.StatusBadGateway,
		constants.ErrCodeOperationFailed:     fiber.StatusInternalServerError,
	}

	status, exists := statusMap[err.Code]
	if !exists {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
