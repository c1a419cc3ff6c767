package handlers

import (
	"net/http"

	"backend/internal/catalog"
	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler owns POST /api/create-order. Wire shapes here are consumed by
// the checkout widget on the site; change them and the widget breaks.
type OrderHandler struct {
	Catalog    *catalog.Catalog
	Gateway    services.GatewayClient
	Store      services.BookingStore
	Creds      intconfig.GatewayCredentials
	Production bool
}

type orderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Message  string `json:"message"`
	Demo     bool   `json:"demo,omitempty"`
}

// POST /api/create-order
func (h OrderHandler) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.OrderService{
		Catalog:   h.Catalog,
		Gateway:   h.Gateway,
		Store:     h.Store,
		Creds:     h.Creds,
		RequestID: middleware.GetRequestID(c),
	}

	result, err := svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse{
		OrderID:  result.OrderID,
		Amount:   result.AmountPaise,
		Currency: result.Currency,
		Message:  "Order created successfully",
		Demo:     result.Demo,
	})
}

func (h OrderHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case domain.IsTamper(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Amount mismatch",
			"message": "Payment amount does not match the package price",
		})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
	default:
		payload := gin.H{
			"error":   "Failed to create order",
			"message": "The payment gateway could not create the order. Please try again.",
		}
		if !h.Production {
			payload["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, payload)
	}
}
