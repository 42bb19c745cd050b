package model

import "time"

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is one checkout attempt against the gateway. paid is absorbing: a
// record reaches it at most once, and the ledger is credited on exactly that
// transition. A webhook may still settle a record a failed callback left in
// failed.
type Payment struct {
	ID                int64         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID            int64         `gorm:"column:user_id;not null;index:idx_payments_user_status"`
	Credits           int64         `gorm:"column:credits;not null"`
	AmountPaise       int64         `gorm:"column:amount_paise;not null"`
	Currency          string        `gorm:"column:currency;type:varchar(8);not null;default:'INR'"`
	RazorpayOrderID   string        `gorm:"column:razorpay_order_id;type:varchar(64);not null;uniqueIndex"`
	RazorpayPaymentID *string       `gorm:"column:razorpay_payment_id;type:varchar(64)"`
	RazorpaySignature *string       `gorm:"column:razorpay_signature;type:varchar(128)"`
	Status            PaymentStatus `gorm:"column:status;type:varchar(10);not null;default:'created';index:idx_payments_user_status"`
	CreatedAt         time.Time     `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	ProcessedAt       *time.Time    `gorm:"column:processed_at"`
}

func (Payment) TableName() string {
	return "payments"
}
