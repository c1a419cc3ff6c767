package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/catalog"
	intconfig "backend/internal/config"
	"backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func testEngine(handler OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-order", handler.Create)
	return r
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.TourPackage{
		{ID: "pkg-1", Title: "Test Package", Price: 5000},
	})
}

func demoOrderHandler() OrderHandler {
	return OrderHandler{
		Catalog: testCatalog(),
		Creds:   intconfig.GatewayCredentials{},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, decoded
}

func validOrderBody() map[string]any {
	return map[string]any{
		"amount":            10000,
		"packageId":         "pkg-1",
		"fullName":          "Asha Gogoi",
		"email":             "asha@example.com",
		"phone":             "9876543210",
		"numberOfTravelers": 2,
		"travelDate":        "2026-11-15",
	}
}

func TestCreateOrderEndpointDemoSuccess(t *testing.T) {
	r := testEngine(demoOrderHandler())

	w, body := postJSON(t, r, "/api/create-order", validOrderBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", w.Code, body)
	}
	if body["amount"] != float64(1000000) {
		t.Fatalf("amount = %v, want 1000000", body["amount"])
	}
	if body["currency"] != "INR" {
		t.Fatalf("currency = %v, want INR", body["currency"])
	}
	if body["demo"] != true {
		t.Fatalf("demo flag missing: %v", body)
	}
	if body["orderId"] == "" || body["orderId"] == nil {
		t.Fatalf("orderId missing: %v", body)
	}
	if body["message"] != "Order created successfully" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestCreateOrderEndpointPhoneValidation(t *testing.T) {
	r := testEngine(demoOrderHandler())

	req := validOrderBody()
	req["phone"] = "12345"

	w, body := postJSON(t, r, "/api/create-order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] != "Invalid phone number - must be 10 digits" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestCreateOrderEndpointAmountMismatch(t *testing.T) {
	r := testEngine(demoOrderHandler())

	req := validOrderBody()
	req["amount"] = 8000

	w, body := postJSON(t, r, "/api/create-order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] != "Amount mismatch" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestCreateOrderEndpointUnknownPackage(t *testing.T) {
	r := testEngine(demoOrderHandler())

	req := validOrderBody()
	req["packageId"] = "pkg-404"

	w, body := postJSON(t, r, "/api/create-order", req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["error"] != "Package not found" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestCreateOrderEndpointMalformedBody(t *testing.T) {
	r := testEngine(demoOrderHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/create-order", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
