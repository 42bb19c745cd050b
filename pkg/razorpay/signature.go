package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyOrderSignature checks the checkout signature Razorpay computes over
// "<order_id>|<payment_id>" with the API key secret.
func (g *gateway) VerifyOrderSignature(orderID, paymentID, signature string) error {
	expected := hmacSHA256([]byte(orderID+"|"+paymentID), g.config.KeySecret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// whole request body using the webhook-specific secret.
func (g *gateway) VerifyWebhookSignature(body []byte, signature string) error {
	expected := hmacSHA256(body, g.config.WebhookSecret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

func hmacSHA256(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignOrder produces the checkout signature for an order/payment pair. Used
// by tests and local tooling; the real signatures come from Razorpay.
func SignOrder(orderID, paymentID, secret string) string {
	return hmacSHA256([]byte(orderID+"|"+paymentID), secret)
}

// SignWebhook produces the whole-body webhook signature.
func SignWebhook(body []byte, secret string) string {
	return hmacSHA256(body, secret)
}
