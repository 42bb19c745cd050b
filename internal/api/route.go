package api

import (
	"github.com/gofiber/fiber/v2"
	v1 "github.com/labelmint/labelmint/internal/api/v1"
)

const prefixV1 = "api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	app.Post(prefixV1+"users", handler.CreateUser)
	app.Get(prefixV1+"users/:id/profile", handler.GetProfile)
	app.Get(prefixV1+"users/:id/payments", handler.ListPayments)

	app.Post(prefixV1+"orders", handler.CreateOrder)
	app.Post(prefixV1+"payments/confirm", handler.ConfirmPayment)
	app.Post(prefixV1+"webhooks/razorpay", handler.RazorpayWebhook)

	app.Post(prefixV1+"labels", handler.CreateLabels)
	app.Get(prefixV1+"labels", handler.ListLabels)
}
