// Package checkout drives the booking flow end to end: create the order,
// open the payment widget, verify the callback. It speaks the same two
// endpoints the site's booking form does.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type State string

const (
	StateIdle               State = "idle"
	StateSubmitting         State = "submitting"
	StateOrderCreated       State = "order_created"
	StateWidgetOpen         State = "widget_open"
	StateVerified           State = "verified"
	StateVerificationFailed State = "verification_failed"
	StateDismissed          State = "dismissed"

	// StateProvisional is the widget-unavailable fallback: the order exists
	// but no payment was collected. Kept as its own terminal state so
	// callers can never mistake it for a paid confirmation.
	StateProvisional State = "provisional"
)

// Widget is the external payment widget. Open blocks until the user
// completes or dismisses it; there is no timeout besides explicit dismissal.
type Widget interface {
	Available() bool
	Open(opts WidgetOptions) (WidgetResult, error)
}

type WidgetOptions struct {
	KeyID       string
	OrderID     string
	AmountPaise int64
	Currency    string
	Name        string
	Description string
	Prefill     Prefill
}

type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// WidgetResult reports how the widget closed. Completed=false means the
// user dismissed it without paying.
type WidgetResult struct {
	Completed bool
	OrderID   string
	PaymentID string
	Signature string
}

// BookingInput is the form data plus the package the user picked.
type BookingInput struct {
	PackageID       string
	PackageTitle    string
	UnitPrice       int64
	FullName        string
	Email           string
	Phone           string
	Travelers       int
	TravelDate      string
	SpecialRequests string
}

// Outcome is the terminal state of one checkout attempt.
type Outcome struct {
	State     State
	OrderID   string
	PaymentID string
	Demo      bool
	Message   string
}

// Flow runs one booking at a time; it is not safe for concurrent use, which
// matches the single form it stands in for.
type Flow struct {
	rest   *resty.Client
	widget Widget
	keyID  string
	state  State
}

func NewFlow(baseURL string, widget Widget, keyID string) *Flow {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Flow{rest: rest, widget: widget, keyID: keyID, state: StateIdle}
}

// State returns the current flow state.
func (f *Flow) State() State {
	return f.state
}

type createOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Message  string `json:"message"`
	Demo     bool   `json:"demo"`
	Error    string `json:"error"`
}

type verifyPaymentResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
	Demo     bool   `json:"demo"`
	Error    string `json:"error"`
}

// Run submits the booking and drives it to a terminal state. Dismissal
// resets the flow to idle without calling the verifier.
func (f *Flow) Run(ctx context.Context, input BookingInput) (Outcome, error) {
	f.state = StateSubmitting

	order, err := f.createOrder(ctx, input)
	if err != nil {
		f.state = StateIdle
		return Outcome{State: StateIdle}, err
	}
	f.state = StateOrderCreated

	if !f.widget.Available() {
		// with no widget the order alone counts as a provisional booking
		// request, never a paid one
		f.state = StateProvisional
		return Outcome{
			State:   StateProvisional,
			OrderID: order.OrderID,
			Demo:    order.Demo,
			Message: "Booking request submitted; payment widget unavailable",
		}, nil
	}

	f.state = StateWidgetOpen
	result, err := f.widget.Open(WidgetOptions{
		KeyID:       f.keyID,
		OrderID:     order.OrderID,
		AmountPaise: order.Amount, // charge what the server echoed, never recompute
		Currency:    order.Currency,
		Name:        "NE Tourism",
		Description: input.PackageTitle,
		Prefill: Prefill{
			Name:    input.FullName,
			Email:   input.Email,
			Contact: input.Phone,
		},
	})
	if err != nil {
		f.state = StateVerificationFailed
		return Outcome{State: StateVerificationFailed, OrderID: order.OrderID}, fmt.Errorf("payment widget: %w", err)
	}

	if !result.Completed {
		f.state = StateDismissed
		out := Outcome{State: StateDismissed, OrderID: order.OrderID}
		f.state = StateIdle
		return out, nil
	}

	verified, demo, err := f.verifyPayment(ctx, result)
	if err != nil || !verified {
		// must never silently succeed: the user is told to contact support
		f.state = StateVerificationFailed
		return Outcome{
			State:     StateVerificationFailed,
			OrderID:   order.OrderID,
			PaymentID: result.PaymentID,
			Message:   "Payment verification failed. Please contact support with your payment ID.",
		}, err
	}

	f.state = StateVerified
	return Outcome{
		State:     StateVerified,
		OrderID:   order.OrderID,
		PaymentID: result.PaymentID,
		Demo:      demo,
		Message:   "Payment verified, booking confirmed",
	}, nil
}

func (f *Flow) createOrder(ctx context.Context, input BookingInput) (createOrderResponse, error) {
	total := input.UnitPrice * int64(input.Travelers)

	resp, err := f.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"amount":            total,
			"packageId":         input.PackageID,
			"fullName":          input.FullName,
			"email":             input.Email,
			"phone":             input.Phone,
			"numberOfTravelers": input.Travelers,
			"travelDate":        input.TravelDate,
			"specialRequests":   input.SpecialRequests,
		}).
		Post("/api/create-order")
	if err != nil {
		return createOrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	var order createOrderResponse
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return createOrderResponse{}, fmt.Errorf("decode order response: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || order.OrderID == "" {
		if order.Error != "" {
			return createOrderResponse{}, fmt.Errorf("create order rejected: %s", order.Error)
		}
		return createOrderResponse{}, fmt.Errorf("create order rejected: %s", resp.Status())
	}
	return order, nil
}

func (f *Flow) verifyPayment(ctx context.Context, result WidgetResult) (verified, demo bool, err error) {
	resp, err := f.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"razorpay_order_id":   result.OrderID,
			"razorpay_payment_id": result.PaymentID,
			"razorpay_signature":  result.Signature,
		}).
		Post("/api/verify-payment")
	if err != nil {
		return false, false, fmt.Errorf("verify payment: %w", err)
	}

	var out verifyPaymentResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return false, false, fmt.Errorf("decode verify response: %w", err)
	}
	return out.Verified, out.Demo, nil
}
