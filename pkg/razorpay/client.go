// Package razorpay is a minimal client for the Razorpay orders API plus the
// signature schemes its checkout and webhooks use.
package razorpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labelmint/labelmint/pkg/httpclient"
)

const OrdersEndpoint = "/v1/orders"

type Gateway interface {
	CreateOrder(ctx context.Context, request CreateOrderRequest) (Order, error)
	VerifyOrderSignature(orderID, paymentID, signature string) error
	VerifyWebhookSignature(body []byte, signature string) error
}

type gateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewGateway(cfg Config, client httpclient.HTTPClient) Gateway {
	return &gateway{config: cfg, client: client}
}

func (g *gateway) CreateOrder(ctx context.Context, request CreateOrderRequest) (Order, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return Order{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": g.basicAuth(),
	}

	resp, err := g.client.Post(ctx, g.config.BaseURL+OrdersEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Order{}, ErrTimeout
		}

		return Order{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode == StatusOK {
		var order Order
		if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
			return Order{}, fmt.Errorf("decoding error: %w", err)
		}

		return order, nil
	}

	return Order{}, MapStatusToError(resp.StatusCode)
}

func (g *gateway) basicAuth() string {
	creds := g.config.KeyID + ":" + g.config.KeySecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}
