package services

import (
	"bytes"
	"fmt"
	"strings"

	"laganbus/internal/domain"
	"laganbus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a fetched booking into the one-page premium pass.
// Pure rendering: no network, no state.
type TicketService struct {
	RequestID string
}

func (s TicketService) GeneratePass(rec domain.BookingRecord) ([]byte, string, error) {
	if strings.TrimSpace(rec.ID) == "" {
		return nil, "", domain.ValidationError{Field: "booking_id", Msg: "record has no booking id"}
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_pass", "id="+rec.ID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lagan Premium Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "LAGAN PREMIUM PASS", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "PASS ID: "+rec.ID)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(rec.Name, "-")),
		fmt.Sprintf("Contact        : %s", safe(rec.Phone, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(rec.From, "-"), safe(rec.To, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(rec.Date, "-")),
		fmt.Sprintf("Service        : %s", safe(rec.Bus, "-")),
		fmt.Sprintf("Seats          : %d", rec.SeatCount),
		fmt.Sprintf("Payment Status : %s", rec.PaymentStatus),
		fmt.Sprintf("Total          : %s", utils.FormatLKR(rec.TotalCost)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Gate closes 15 minutes before departure. Baggage allowance 30kg. Present this pass when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "ticket: render pdf", Err: err}
	}

	filename := fmt.Sprintf("LaganPass_%s.pdf", utils.SafeFilenamePart(rec.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
