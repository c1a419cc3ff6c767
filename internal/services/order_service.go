package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"backend/internal/catalog"
	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/gateway"
	"backend/internal/utils"

	"github.com/google/uuid"
)

// GatewayClient creates live orders at the payment gateway.
type GatewayClient interface {
	CreateOrder(ctx context.Context, input gateway.CreateOrderInput) (gateway.Order, error)
}

// BookingStore persists booking records. Optional: checkout survives without it.
type BookingStore interface {
	Create(rec models.BookingRecord) (int64, error)
}

// OrderService validates booking requests, recomputes the authoritative
// price from the catalog and creates a demo or live gateway order.
type OrderService struct {
	Catalog   *catalog.Catalog
	Gateway   GatewayClient
	Store     BookingStore
	Creds     intconfig.GatewayCredentials
	RequestID string
}

const (
	maxTravelers = 15
	currencyINR  = "INR"

	// Tolerance for float rounding on the client-claimed total. Anything
	// beyond one rupee is treated as tampering, not rounding.
	amountTolerance = 1.0
)

// CreateOrder runs the full validation sequence (fail fast, first violation
// wins) and returns the order. The client-claimed amount is used only for
// the tamper check; the charge amount is always recomputed server-side.
func (s OrderService) CreateOrder(ctx context.Context, req models.BookingRequest) (models.OrderResult, error) {
	if utils.TrimOrEmpty(req.PackageID) == "" {
		return models.OrderResult{}, domain.ValidationError{Field: "packageId", Msg: "Package ID is required"}
	}

	travelersF := req.NumberOfTravelers
	if travelersF != math.Trunc(travelersF) || travelersF < 1 || travelersF > maxTravelers {
		// audit trail for abuse patterns: log the full request context
		utils.LogEvent(s.RequestID, "order", "reject_travelers",
			fmt.Sprintf("package=%s travelers=%v email=%s at=%s",
				req.PackageID, req.NumberOfTravelers, req.Email, utils.FormatDateTime(time.Now())))
		return models.OrderResult{}, domain.ValidationError{Field: "numberOfTravelers", Msg: "Number of travelers must be between 1 and 15"}
	}
	travelers := int(travelersF)

	if len(strings.TrimSpace(req.FullName)) < 2 {
		return models.OrderResult{}, domain.ValidationError{Field: "fullName", Msg: "Full name must be at least 2 characters"}
	}
	if !strings.Contains(req.Email, "@") {
		return models.OrderResult{}, domain.ValidationError{Field: "email", Msg: "Invalid email address"}
	}
	if !utils.IsDigits(req.Phone) || len(req.Phone) != 10 {
		return models.OrderResult{}, domain.ValidationError{Field: "phone", Msg: "Invalid phone number - must be 10 digits"}
	}
	if strings.TrimSpace(req.TravelDate) == "" {
		return models.OrderResult{}, domain.ValidationError{Field: "travelDate", Msg: "Travel date is required"}
	}

	pkg, err := s.Catalog.ByID(req.PackageID)
	if err != nil {
		utils.LogEvent(s.RequestID, "order", "package_miss", "package="+req.PackageID)
		return models.OrderResult{}, err
	}

	if req.Amount <= 0 {
		return models.OrderResult{}, domain.ValidationError{Field: "amount", Msg: "Amount must be a positive number"}
	}

	serverAmount := pkg.Price * int64(travelers)
	if math.Abs(req.Amount-float64(serverAmount)) > amountTolerance {
		// core anti-fraud control: the client tried to dictate its own price
		utils.LogEvent(s.RequestID, "order", "tamper_alert",
			fmt.Sprintf("package=%s travelers=%d client_amount=%.2f server_amount=%d email=%s",
				req.PackageID, travelers, req.Amount, serverAmount, req.Email))
		return models.OrderResult{}, domain.TamperError{
			ClientAmount: int64(req.Amount),
			ServerAmount: serverAmount,
		}
	}

	result, err := s.placeOrder(ctx, req, pkg, travelers, serverAmount)
	if err != nil {
		return models.OrderResult{}, err
	}

	s.record(req, travelers, result)
	utils.LogEvent(s.RequestID, "order", "created",
		fmt.Sprintf("order_id=%s package=%s travelers=%d amount=%s demo=%t",
			result.OrderID, pkg.ID, travelers, utils.FormatINR(serverAmount), result.Demo))
	return result, nil
}

func (s OrderService) placeOrder(ctx context.Context, req models.BookingRequest, pkg models.TourPackage, travelers int, serverAmount int64) (models.OrderResult, error) {
	amountPaise := utils.RupeesToPaise(serverAmount)

	if s.Creds.DemoMode() {
		// no external call; always succeeds once validation passed
		return models.OrderResult{
			OrderID:     demoOrderID(),
			AmountPaise: amountPaise,
			Currency:    currencyINR,
			Demo:        true,
		}, nil
	}

	order, err := s.Gateway.CreateOrder(ctx, gateway.CreateOrderInput{
		AmountPaise: amountPaise,
		Currency:    currencyINR,
		Receipt:     fmt.Sprintf("rcpt_%s_%d", pkg.ID, time.Now().Unix()),
		Notes: map[string]string{
			"package_id":       pkg.ID,
			"package_title":    pkg.Title,
			"full_name":        utils.NormalizeSpace(req.FullName),
			"email":            req.Email,
			"phone":            req.Phone,
			"travelers":        fmt.Sprintf("%d", travelers),
			"travel_date":      req.TravelDate,
			"special_requests": req.SpecialRequests,
		},
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "order", "gateway_failed", err.Error())
		return models.OrderResult{}, err
	}

	return models.OrderResult{
		OrderID:     order.ID,
		AmountPaise: amountPaise,
		Currency:    currencyINR,
	}, nil
}

// record writes the booking trace best-effort. Checkout must succeed even
// when the store is down, so failures are logged and swallowed.
func (s OrderService) record(req models.BookingRequest, travelers int, result models.OrderResult) {
	if s.Store == nil {
		return
	}
	_, err := s.Store.Create(models.BookingRecord{
		OrderID:         result.OrderID,
		PackageID:       utils.TrimOrEmpty(req.PackageID),
		FullName:        utils.NormalizeSpace(req.FullName),
		Email:           req.Email,
		Phone:           req.Phone,
		Travelers:       travelers,
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
		AmountPaise:     result.AmountPaise,
		Currency:        result.Currency,
		Demo:            result.Demo,
		PaymentStatus:   models.PaymentStatusPending,
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "order", "store_warning", "booking record not saved: "+err.Error())
	}
}

// demoOrderID builds a locally generated opaque id. Unique per creation,
// no semantic meaning beyond that.
func demoOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("demo_order_%d_%s", time.Now().UnixMilli(), suffix)
}
