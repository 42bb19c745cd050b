package service

import (
	"time"

	"github.com/labelmint/labelmint/internal/model"
	"github.com/shopspring/decimal"
)

type CreateOrderCommand struct {
	UserID  int64
	Credits int64
}

type CreateOrderResult struct {
	OrderID  string        `json:"order_id"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	Credits  int64         `json:"credits"`
	Checkout CheckoutConfig `json:"checkout"`
}

// CheckoutConfig is what the caller needs to render the gateway checkout.
type CheckoutConfig struct {
	KeyID        string `json:"key_id"`
	SiteName     string `json:"name"`
	PrefillEmail string `json:"prefill_email"`
}

type ConfirmPaymentCommand struct {
	UserID    int64
	OrderID   string
	PaymentID string
	Signature string
}

type ConfirmPaymentResult struct {
	CreditsLeft decimal.Decimal `json:"credits_left"`
}

type CreateLabelsCommand struct {
	UserID   int64
	Name     string
	SkuType  string
	Category string
	Units    int
}

type CreatedLabel struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	UnitIndex int    `json:"unit_index"`
}

type CreateLabelsResult struct {
	Created     []CreatedLabel  `json:"created"`
	CreditsLeft decimal.Decimal `json:"credits_left"`
}

type CreateUserCommand struct {
	Email string
}

type CreateUserResult struct {
	User model.User `json:"user"`
}

type ProfileResult struct {
	Email      string          `json:"email"`
	PublicID   string          `json:"public_id"`
	Credits    decimal.Decimal `json:"credits"`
	LabelCount int64           `json:"label_count"`
	CreatedAt  time.Time       `json:"created_at"`
}
