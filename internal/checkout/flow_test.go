package checkout

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"backend/internal/catalog"
	intconfig "backend/internal/config"
	"backend/internal/domain/models"
	"backend/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

type scriptedWidget struct {
	available bool
	result    WidgetResult
	err       error
	opened    bool
	lastOpts  WidgetOptions
}

func (w *scriptedWidget) Available() bool { return w.available }

func (w *scriptedWidget) Open(opts WidgetOptions) (WidgetResult, error) {
	w.opened = true
	w.lastOpts = opts
	return w.result, w.err
}

// backendServer runs the real order/verify handlers in demo mode.
func backendServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New([]models.TourPackage{
		{ID: "pkg-1", Title: "Test Package", Price: 5000},
	})
	creds := intconfig.GatewayCredentials{}

	r := gin.New()
	r.POST("/api/create-order", handlers.OrderHandler{Catalog: cat, Creds: creds}.Create)
	r.POST("/api/verify-payment", handlers.PaymentHandler{Creds: creds}.Verify)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func bookingInput() BookingInput {
	return BookingInput{
		PackageID:    "pkg-1",
		PackageTitle: "Test Package",
		UnitPrice:    5000,
		FullName:     "Asha Gogoi",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		Travelers:    2,
		TravelDate:   "2026-11-15",
	}
}

func TestFlowVerified(t *testing.T) {
	srv := backendServer(t)
	widget := &scriptedWidget{
		available: true,
		result:    WidgetResult{Completed: true, OrderID: "order_x", PaymentID: "pay_y", Signature: "sig"},
	}
	flow := NewFlow(srv.URL, widget, "rzp_test_abc")

	out, err := flow.Run(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("flow failed: %v", err)
	}
	if out.State != StateVerified {
		t.Fatalf("state = %s, want verified", out.State)
	}
	if !widget.opened {
		t.Fatalf("widget never opened")
	}
	// the widget must charge what create-order echoed, never recompute
	if widget.lastOpts.AmountPaise != 1000000 {
		t.Fatalf("widget amount = %d, want 1000000", widget.lastOpts.AmountPaise)
	}
	if widget.lastOpts.Prefill.Email != "asha@example.com" {
		t.Fatalf("prefill missing: %+v", widget.lastOpts.Prefill)
	}
	if flow.State() != StateVerified {
		t.Fatalf("flow state = %s, want verified", flow.State())
	}
}

func TestFlowDismissedResetsToIdle(t *testing.T) {
	srv := backendServer(t)
	widget := &scriptedWidget{available: true, result: WidgetResult{Completed: false}}
	flow := NewFlow(srv.URL, widget, "rzp_test_abc")

	out, err := flow.Run(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("flow failed: %v", err)
	}
	if out.State != StateDismissed {
		t.Fatalf("state = %s, want dismissed", out.State)
	}
	if flow.State() != StateIdle {
		t.Fatalf("dismissal must reset the flow to idle, got %s", flow.State())
	}
}

func TestFlowWidgetUnavailableIsProvisional(t *testing.T) {
	srv := backendServer(t)
	widget := &scriptedWidget{available: false}
	flow := NewFlow(srv.URL, widget, "rzp_test_abc")

	out, err := flow.Run(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("flow failed: %v", err)
	}
	if out.State != StateProvisional {
		t.Fatalf("state = %s, want provisional", out.State)
	}
	if out.OrderID == "" {
		t.Fatalf("provisional outcome must carry the order id")
	}
	if widget.opened {
		t.Fatalf("unavailable widget must not be opened")
	}
}

func TestFlowWidgetErrorNeverSucceeds(t *testing.T) {
	srv := backendServer(t)
	widget := &scriptedWidget{available: true, err: errors.New("script blocked")}
	flow := NewFlow(srv.URL, widget, "rzp_test_abc")

	out, err := flow.Run(context.Background(), bookingInput())
	if err == nil {
		t.Fatalf("expected error from widget failure")
	}
	if out.State != StateVerificationFailed {
		t.Fatalf("state = %s, want verification_failed", out.State)
	}
}

func TestFlowRejectedOrderStopsBeforeWidget(t *testing.T) {
	srv := backendServer(t)
	widget := &scriptedWidget{available: true}
	flow := NewFlow(srv.URL, widget, "rzp_test_abc")

	input := bookingInput()
	input.PackageID = "pkg-404"

	if _, err := flow.Run(context.Background(), input); err == nil {
		t.Fatalf("expected rejection for unknown package")
	}
	if widget.opened {
		t.Fatalf("widget must not open when order creation fails")
	}
	if flow.State() != StateIdle {
		t.Fatalf("failed submission must reset to idle, got %s", flow.State())
	}
}
