package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"backend/internal/config"
	"backend/internal/domain"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

// CreateOrderInput mirrors the gateway orders API request. Notes carry the
// booking metadata so a payment can be reconciled back to its booking later.
type CreateOrderInput struct {
	AmountPaise int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Receipt     string            `json:"receipt"`
	Notes       map[string]string `json:"notes,omitempty"`
}

// Order is the subset of the gateway order object the checkout flow needs.
type Order struct {
	ID          string `json:"id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	Status      string `json:"status"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// RazorpayClient talks to the Razorpay orders API with basic auth.
type RazorpayClient struct {
	rest *resty.Client
}

type ClientOption func(*RazorpayClient)

// WithBaseURL points the client at a different host (tests).
func WithBaseURL(url string) ClientOption {
	return func(c *RazorpayClient) {
		c.rest.SetBaseURL(url)
	}
}

func NewRazorpayClient(creds config.GatewayCredentials, opts ...ClientOption) *RazorpayClient {
	rest := resty.New().
		SetBaseURL(defaultBaseURL).
		SetBasicAuth(creds.KeyID, creds.Secret).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	c := &RazorpayClient{rest: rest}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateOrder creates a live gateway order. Any transport or API failure is
// surfaced as an upstream error; callers map it to a generic 500.
func (c *RazorpayClient) CreateOrder(ctx context.Context, input CreateOrderInput) (Order, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(input).
		Post("/v1/orders")
	if err != nil {
		return Order{}, domain.UpstreamError{Service: "razorpay", Err: fmt.Errorf("create order: %w", err)}
	}

	if resp.StatusCode() != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error.Description != "" {
			return Order{}, domain.UpstreamError{
				Service: "razorpay",
				Err:     fmt.Errorf("create order: %s (%s)", apiErr.Error.Description, resp.Status()),
			}
		}
		return Order{}, domain.UpstreamError{Service: "razorpay", Err: fmt.Errorf("create order: %s", resp.Status())}
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return Order{}, domain.UpstreamError{Service: "razorpay", Err: fmt.Errorf("decode order response: %w", err)}
	}
	return order, nil
}
