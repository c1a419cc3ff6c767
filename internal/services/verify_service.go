package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

// PaymentMarker records a verified payment against its booking. Optional.
type PaymentMarker interface {
	MarkPaid(orderID, paymentID string) error
}

// VerifyService proves a payment callback's authenticity. It must take the
// demo/live decision from the same credentials as order creation, or the two
// endpoints disagree about which mode the system is in.
type VerifyService struct {
	Creds     intconfig.GatewayCredentials
	Store     PaymentMarker
	RequestID string
}

// Verify checks the gateway signature over "orderId|paymentId". A mismatch
// yields Verified=false with no detail about what differed; the caller must
// not become an oracle for the HMAC comparison.
func (s VerifyService) Verify(req models.VerificationRequest) models.VerificationResult {
	if s.Creds.DemoMode() {
		utils.LogEvent(s.RequestID, "payment", "verify_demo", "verification skipped, demo mode")
		return models.VerificationResult{Verified: true, Demo: true}
	}

	expected := SignPayload(s.Creds.Secret, req.OrderID, req.PaymentID)
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		utils.LogEvent(s.RequestID, "payment", "verify_failed", "signature mismatch order_id="+req.OrderID)
		return models.VerificationResult{Verified: false}
	}

	utils.LogEvent(s.RequestID, "payment", "verified", "order_id="+req.OrderID+" payment_id="+req.PaymentID)
	if s.Store != nil {
		if err := s.Store.MarkPaid(req.OrderID, req.PaymentID); err != nil {
			utils.LogEvent(s.RequestID, "payment", "store_warning", "payment not recorded: "+err.Error())
		}
	}
	return models.VerificationResult{
		Verified:  true,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
	}
}

// SignPayload computes the hex HMAC-SHA256 the gateway uses for callbacks.
func SignPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
