package domain

import "strings"

// PaymentStatus is set and advanced only by the out-of-band bank transfer
// reconciliation; this service only ever reads it back from the store.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentConfirmed PaymentStatus = "Confirmed"
	PaymentFailed    PaymentStatus = "Failed"
)

// NormalizePaymentStatus maps the store's free-text payment cell onto the
// known statuses. Blank or unrecognized values read as Pending.
func NormalizePaymentStatus(s string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed", "paid", "success":
		return PaymentConfirmed
	case "failed", "rejected":
		return PaymentFailed
	default:
		return PaymentPending
	}
}

// BookingDraft is the client-authored reservation request, unvalidated until
// submit time.
type BookingDraft struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	From      string `json:"from"`
	To        string `json:"to"`
	Date      string `json:"date"` // YYYY-MM-DD
	Bus       string `json:"bus"`
	SeatCount int    `json:"seat_count"`
}

// BookingRecord is a booking as held by (or headed to) the external store,
// already normalized to internal field names.
type BookingRecord struct {
	ID            string        `json:"booking_id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	From          string        `json:"from"`
	To            string        `json:"to"`
	Date          string        `json:"date"`
	Bus           string        `json:"bus"`
	SeatCount     int           `json:"seat_count"`
	TotalCost     int64         `json:"total_cost"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     string        `json:"created_at"`
}
