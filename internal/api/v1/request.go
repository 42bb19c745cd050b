package v1

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateOrderRequest struct {
	UserID  int64 `json:"user_id" validate:"required,min=1"`
	Credits int64 `json:"credits" validate:"required,min=1"`
}

type ConfirmPaymentRequest struct {
	UserID            int64  `json:"user_id" validate:"required,min=1"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required,order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type CreateLabelsRequest struct {
	UserID   int64  `json:"user_id" validate:"required,min=1"`
	Name     string `json:"name" validate:"required,max=120"`
	SkuType  string `json:"type" validate:"required,max=80"`
	Category string `json:"category" validate:"required,max=80"`
	Units    int    `json:"units" validate:"required,min=1"`
}
