package services

import (
	"context"
	"testing"

	"laganbus/internal/domain"
)

type stubFinder struct {
	rec    domain.BookingRecord
	err    error
	called bool
}

func (s *stubFinder) FindByPhone(ctx context.Context, phone string) (domain.BookingRecord, error) {
	s.called = true
	return s.rec, s.err
}

func TestLookupEmptyPhoneNoNetworkCall(t *testing.T) {
	finder := &stubFinder{}
	svc := LookupService{Store: finder}

	_, err := svc.Lookup(context.Background(), "   ")
	if !domain.IsValidation(err) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if finder.called {
		t.Fatalf("store queried for an empty phone")
	}
}

func TestLookupPassesThroughRecord(t *testing.T) {
	want := domain.BookingRecord{ID: "LGN-ABC123XYZ", Phone: "94771234567"}
	svc := LookupService{Store: &stubFinder{rec: want}}

	got, err := svc.Lookup(context.Background(), "94771234567")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("record id = %q, want %q", got.ID, want.ID)
	}
}

func TestLookupKeepsNotFoundDistinct(t *testing.T) {
	svc := LookupService{Store: &stubFinder{err: domain.NotFoundError{Resource: "booking"}}}
	if _, err := svc.Lookup(context.Background(), "000"); !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}

	svc = LookupService{Store: &stubFinder{err: domain.UnavailableError{Service: "record store"}}}
	if _, err := svc.Lookup(context.Background(), "000"); !domain.IsUnavailable(err) {
		t.Fatalf("got %v, want UnavailableError", err)
	}
}
