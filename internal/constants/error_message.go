package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidPayload      = "INVALID_PAYLOAD"
	ErrCodeGatewayError        = "GATEWAY_ERROR"
	ErrCodeVerificationFailed  = "VERIFICATION_FAILED"
	ErrCodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeUserExisted         = "USER_ALREADY_EXISTS"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidQuantity     = "credit quantity must be a positive integer"
	ErrMsgInvalidPayload      = "name, type, category and a positive unit count are required"
	ErrMsgGatewayError        = "payment gateway request failed"
	ErrMsgVerificationFailed  = "signature verification failed"
	ErrMsgInsufficientCredits = "not enough credits"
	ErrMsgOrderNotFound       = "order not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgUserExisted         = "user already exists"
	ErrMsgOperationFailed     = "operation failed"
	ErrMsgInternalError       = "internal error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidQuantity:     ErrMsgInvalidQuantity,
	ErrCodeInvalidPayload:      ErrMsgInvalidPayload,
	ErrCodeGatewayError:        ErrMsgGatewayError,
	ErrCodeVerificationFailed:  ErrMsgVerificationFailed,
	ErrCodeInsufficientCredits: ErrMsgInsufficientCredits,
	ErrCodeOrderNotFound:       ErrMsgOrderNotFound,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeUserExisted:         ErrMsgUserExisted,
	ErrCodeOperationFailed:     ErrMsgOperationFailed,
	ErrCodeInternalError:       ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}
