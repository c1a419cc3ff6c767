package models

import "time"

// BookingRequest is the untrusted client payload for order creation.
// Amount and NumberOfTravelers arrive as JSON numbers; both are range- and
// integrality-checked by the order service, never trusted as-is.
type BookingRequest struct {
	Amount            float64 `json:"amount"`
	PackageID         string  `json:"packageId"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	NumberOfTravelers float64 `json:"numberOfTravelers"`
	TravelDate        string  `json:"travelDate"`
	SpecialRequests   string  `json:"specialRequests,omitempty"`
}

// OrderResult is what order creation hands back to the checkout flow.
// AmountPaise is the server-computed total in minor units (rupees x 100).
type OrderResult struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	Demo        bool
}

// Booking payment statuses persisted in the booking store.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// BookingRecord is the durable trace of an order creation. It exists so
// payment callbacks can be correlated with the order that produced them.
type BookingRecord struct {
	ID              int64     `json:"id"`
	OrderID         string    `json:"order_id"`
	PackageID       string    `json:"package_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Travelers       int       `json:"travelers"`
	TravelDate      string    `json:"travel_date"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	AmountPaise     int64     `json:"amount_paise"`
	Currency        string    `json:"currency"`
	Demo            bool      `json:"demo"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentID       string    `json:"payment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
