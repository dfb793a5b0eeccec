package services

import (
	"bytes"
	"testing"

	"laganbus/internal/domain"
)

func TestGeneratePass(t *testing.T) {
	rec := domain.BookingRecord{
		ID:            "LGN-PREM7792X",
		Name:          "Hon. Alex Pierce",
		Phone:         "94771234567",
		From:          "Nintavur",
		To:            "Kandy",
		Date:          "2025-03-01",
		Bus:           "Sakeer Express",
		SeatCount:     2,
		TotalCost:     5400,
		PaymentStatus: domain.PaymentConfirmed,
	}

	pdf, filename, err := TicketService{}.GeneratePass(rec)
	if err != nil {
		t.Fatalf("GeneratePass returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GeneratePass returned empty document")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "LaganPass_LGN-PREM7792X.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGeneratePassRequiresFetchedRecord(t *testing.T) {
	_, _, err := TicketService{}.GeneratePass(domain.BookingRecord{})
	if !domain.IsValidation(err) {
		t.Fatalf("got %v, want ValidationError for a record without id", err)
	}
}
