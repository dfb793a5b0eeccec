package services

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"laganbus/internal/catalog"
	"laganbus/internal/domain"
	"laganbus/internal/metrics"
	"laganbus/internal/utils"
)

const bookingIDPrefix = "LGN-"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CloudStore is the write side of the external record store.
type CloudStore interface {
	Add(ctx context.Context, rec domain.BookingRecord) error
}

// BookingService turns a validated draft into a record, mirrors it to the
// cloud store without waiting, and builds the WhatsApp hand-off. The
// messaging hand-off is the channel a human operator reliably sees; the
// store is a convenience mirror.
type BookingService struct {
	Catalog     catalog.Catalog
	Store       CloudStore
	AdminPhone  string
	SyncTimeout time.Duration
	RequestID   string

	// Test seams.
	NewID      func() string
	Now        func() time.Time
	syncNotify func(error)
}

// Confirmation is everything the form needs after a successful submit.
type Confirmation struct {
	Record      domain.BookingRecord
	Message     string
	WhatsAppURL string
}

// ValidateDraft rejects a draft missing any required field, with one
// human-readable message per rejection. Seat-count bounds are left to the
// form's stepper control and are not re-checked here; origin may equal
// destination.
func ValidateDraft(d domain.BookingDraft) error {
	checks := []struct {
		field string
		value string
		msg   string
	}{
		{"name", d.Name, "passenger name is required"},
		{"phone", d.Phone, "contact number is required"},
		{"from", d.From, "departure city is required"},
		{"to", d.To, "destination city is required"},
		{"date", d.Date, "travel date is required"},
		{"bus", d.Bus, "coach service is required"},
	}
	for _, c := range checks {
		if utils.TrimOrEmpty(c.value) == "" {
			return domain.ValidationError{Field: c.field, Msg: c.msg}
		}
	}
	return nil
}

// Submit validates the draft, builds the record and dispatches the cloud
// mirror write in the background. It returns as soon as the confirmation
// message and deep-link are ready; store failures never gate the hand-off.
func (s BookingService) Submit(draft domain.BookingDraft) (Confirmation, error) {
	if err := ValidateDraft(draft); err != nil {
		return Confirmation{}, err
	}

	rec := domain.BookingRecord{
		ID:            s.newID(),
		Name:          utils.TrimOrEmpty(draft.Name),
		Phone:         utils.TrimOrEmpty(draft.Phone),
		From:          utils.TrimOrEmpty(draft.From),
		To:            utils.TrimOrEmpty(draft.To),
		Date:          utils.TrimOrEmpty(draft.Date),
		Bus:           utils.TrimOrEmpty(draft.Bus),
		SeatCount:     draft.SeatCount,
		TotalCost:     s.Catalog.Fare(draft.Bus, draft.SeatCount),
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     utils.FormatDateTime(s.now()),
	}

	go s.syncToCloud(rec)

	msg := ConfirmationMessage(rec)
	utils.LogEvent(s.RequestID, "booking", "submit", fmt.Sprintf("id=%s seats=%d total=%d", rec.ID, rec.SeatCount, rec.TotalCost))

	return Confirmation{
		Record:      rec,
		Message:     msg,
		WhatsAppURL: whatsAppURL(s.AdminPhone, msg),
	}, nil
}

// syncToCloud runs detached from the request with its own deadline. The
// outcome is logged and counted only.
func (s BookingService) syncToCloud(rec domain.BookingRecord) {
	timeout := s.SyncTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.Store.Add(ctx, rec)
	if err != nil {
		metrics.CloudSyncFailures.Inc()
		utils.LogError(s.RequestID, "booking", "cloud_sync", err)
	} else {
		utils.LogEvent(s.RequestID, "booking", "cloud_sync", "id="+rec.ID)
	}
	if s.syncNotify != nil {
		s.syncNotify(err)
	}
}

// ConfirmationMessage renders the plain-text reservation request the user
// forwards to the admin number.
func ConfirmationMessage(rec domain.BookingRecord) string {
	var b strings.Builder
	b.WriteString("*ELITE RESERVATION REQUEST*\n\n")
	fmt.Fprintf(&b, "🆔 *Booking ID:* %s\n", rec.ID)
	fmt.Fprintf(&b, "👤 *Passenger:* %s\n", rec.Name)
	fmt.Fprintf(&b, "📱 *Contact:* %s\n", rec.Phone)
	fmt.Fprintf(&b, "📍 *Route:* %s ➔ %s\n", rec.From, rec.To)
	fmt.Fprintf(&b, "📅 *Date:* %s\n", rec.Date)
	fmt.Fprintf(&b, "🚌 *Service:* %s\n", rec.Bus)
	fmt.Fprintf(&b, "💺 *Seats:* %d\n", rec.SeatCount)
	fmt.Fprintf(&b, "💰 *Premium Cost:* %s\n\n", utils.FormatLKR(rec.TotalCost))
	b.WriteString("_Cloud Synchronized Security Checked_")
	return b.String()
}

// NewBookingID generates the short client-side identifier: fixed prefix plus
// nine random base-36 characters, uppercased. Uniqueness is best effort; the
// store is never consulted for collisions.
func NewBookingID() string {
	var sb strings.Builder
	sb.WriteString(bookingIDPrefix)
	for i := 0; i < 9; i++ {
		sb.WriteByte(base36[rand.Intn(len(base36))])
	}
	return sb.String()
}

func whatsAppURL(adminPhone, message string) string {
	return "https://wa.me/" + adminPhone + "?text=" + url.QueryEscape(message)
}

func (s BookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return NewBookingID()
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
