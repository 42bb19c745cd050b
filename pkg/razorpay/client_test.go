package razorpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labelmint/labelmint/pkg/httpclient"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(serverURL string) razorpay.Gateway {
	cfg := razorpay.Config{
		BaseURL:       serverURL,
		KeyID:         "rzp_test_key",
		KeySecret:     "key_secret",
		WebhookSecret: "hook_secret",
	}
	return razorpay.NewGateway(cfg, httpclient.NewHTTPClient(5*time.Second))
}

func TestGateway_CreateOrder(t *testing.T) {
	t.Run("posts order and decodes response", func(t *testing.T) {
		var gotAuth string
		var gotReq razorpay.CreateOrderRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, razorpay.OrdersEndpoint, r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"order_abc123","amount":25000,"currency":"INR","status":"created","receipt":""}`))
		}))
		defer server.Close()

		gw := newTestGateway(server.URL)

		order, err := gw.CreateOrder(context.Background(), razorpay.CreateOrderRequest{
			Amount:         25000,
			Currency:       "INR",
			PaymentCapture: 1,
			Notes:          map[string]string{"credits": "5"},
		})

		require.NoError(t, err)
		assert.Equal(t, "order_abc123", order.ID)
		assert.Equal(t, int64(25000), order.Amount)
		// base64("rzp_test_key:key_secret")
		assert.Equal(t, "Basic cnpwX3Rlc3Rfa2V5OmtleV9zZWNyZXQ=", gotAuth)
		assert.Equal(t, int64(25000), gotReq.Amount)
		assert.Equal(t, 1, gotReq.PaymentCapture)
	})

	t.Run("maps gateway statuses to sentinel errors", func(t *testing.T) {
		cases := []struct {
			status int
			want   error
		}{
			{http.StatusBadRequest, razorpay.ErrBadRequest},
			{http.StatusUnauthorized, razorpay.ErrAuthFailed},
			{http.StatusInternalServerError, razorpay.ErrGateway},
			{http.StatusBadGateway, razorpay.ErrGateway},
		}

		for _, tc := range cases {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))

			gw := newTestGateway(server.URL)
			_, err := gw.CreateOrder(context.Background(), razorpay.CreateOrderRequest{Amount: 100, Currency: "INR"})

			assert.ErrorIs(t, err, tc.want)
			server.Close()
		}
	})
}

func TestMapStatusToError(t *testing.T) {
	assert.ErrorIs(t, razorpay.MapStatusToError(400), razorpay.ErrBadRequest)
	assert.ErrorIs(t, razorpay.MapStatusToError(401), razorpay.ErrAuthFailed)
	assert.ErrorIs(t, razorpay.MapStatusToError(500), razorpay.ErrGateway)
	assert.ErrorIs(t, razorpay.MapStatusToError(418), razorpay.ErrGateway)
}
