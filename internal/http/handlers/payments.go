package handlers

import (
	"net/http"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PaymentHandler owns POST /api/verify-payment, called by the widget after
// checkout completes.
type PaymentHandler struct {
	Creds intconfig.GatewayCredentials
	Store services.PaymentMarker
}

type verifyResponse struct {
	Verified  bool   `json:"verified"`
	Message   string `json:"message"`
	OrderID   string `json:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	Demo      bool   `json:"demo,omitempty"`
}

// POST /api/verify-payment
func (h PaymentHandler) Verify(c *gin.Context) {
	var req models.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// caller is the trusted widget, so a broken payload is a processing
		// failure rather than field-level validation
		c.JSON(http.StatusInternalServerError, gin.H{
			"verified": false,
			"error":    "Payment verification error",
			"message":  err.Error(),
		})
		return
	}

	svc := services.VerifyService{
		Creds:     h.Creds,
		Store:     h.Store,
		RequestID: middleware.GetRequestID(c),
	}

	result := svc.Verify(req)
	if !result.Verified {
		// no detail about the mismatch leaks to the caller
		c.JSON(http.StatusBadRequest, gin.H{
			"verified": false,
			"error":    "Payment verification failed",
		})
		return
	}

	if result.Demo {
		c.JSON(http.StatusOK, verifyResponse{
			Verified: true,
			Message:  "Demo payment verification successful",
			Demo:     true,
		})
		return
	}

	c.JSON(http.StatusOK, verifyResponse{
		Verified:  true,
		Message:   "Payment verified successfully",
		OrderID:   result.OrderID,
		PaymentID: result.PaymentID,
	})
}
