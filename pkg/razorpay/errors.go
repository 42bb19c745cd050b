package razorpay

import "errors"

const (
	StatusOK          = 200
	StatusBadRequest  = 400
	StatusUnauthzd    = 401
	StatusServerError = 500
)

const (
	ErrCodeGatewayError      = "GATEWAY_ERROR"
	ErrCodeBadRequest        = "GATEWAY_BAD_REQUEST"
	ErrCodeAuthFailed        = "GATEWAY_AUTH_FAILED"
	ErrCodeTimeout           = "GATEWAY_TIMEOUT"
	ErrCodeSignatureMismatch = "SIGNATURE_MISMATCH"
)

var (
	ErrGateway           = errors.New(ErrCodeGatewayError)
	ErrBadRequest        = errors.New(ErrCodeBadRequest)
	ErrAuthFailed        = errors.New(ErrCodeAuthFailed)
	ErrTimeout           = errors.New(ErrCodeTimeout)
	ErrSignatureMismatch = errors.New(ErrCodeSignatureMismatch)
)

var statusErrorMap = map[int]error{
	StatusBadRequest:  ErrBadRequest,
	StatusUnauthzd:    ErrAuthFailed,
	StatusServerError: ErrGateway,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrGateway
}
