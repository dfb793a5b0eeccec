package services

import (
	"context"

	"laganbus/internal/domain"
	"laganbus/internal/utils"
)

// RecordFinder is the read side of the external record store.
type RecordFinder interface {
	FindByPhone(ctx context.Context, phone string) (domain.BookingRecord, error)
}

// LookupService fetches a booking back from the store by phone number. One
// round trip per call; no caching, no retry — a failed attempt asks the user
// to try again.
type LookupService struct {
	Store     RecordFinder
	RequestID string
}

func (s LookupService) Lookup(ctx context.Context, phone string) (domain.BookingRecord, error) {
	phone = utils.TrimOrEmpty(phone)
	if phone == "" {
		return domain.BookingRecord{}, domain.ValidationError{Field: "phone", Msg: "phone number is required"}
	}

	rec, err := s.Store.FindByPhone(ctx, phone)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "lookup", "search", "no booking for phone")
			return domain.BookingRecord{}, err
		}
		utils.LogError(s.RequestID, "lookup", "search", err)
		return domain.BookingRecord{}, err
	}

	utils.LogEvent(s.RequestID, "lookup", "search", "id="+rec.ID)
	return rec, nil
}
