// Package sheetstore talks to the spreadsheet-backed record endpoint (an
// Apps Script web app). The wire contract is a single URL taking query-string
// parameters: method=add appends a row (response body is opaque and
// discarded), method=search returns {success, booking?, message?} keyed by
// phone number. The endpoint is the store of record; this client never
// caches and never retries.
package sheetstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"laganbus/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Add appends a booking row. The Apps Script response is not readable in a
// useful way, so the body is drained and discarded; only transport failures
// are reported. Success here is not a durability guarantee.
func (c *Client) Add(ctx context.Context, rec domain.BookingRecord) error {
	params := url.Values{
		"method": {"add"},
		"id":     {rec.ID},
		"name":   {rec.Name},
		"phone":  {rec.Phone},
		"from":   {rec.From},
		"to":     {rec.To},
		"date":   {rec.Date},
		"bus":    {rec.Bus},
		"seats":  {strconv.Itoa(rec.SeatCount)},
		"total":  {strconv.FormatInt(rec.TotalCost, 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.InternalError{Msg: "sheetstore: build add request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UnavailableError{Service: "record store", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// FindByPhone runs a single search round trip and normalizes the store's
// field labels into the internal record shape.
func (c *Client) FindByPhone(ctx context.Context, phone string) (domain.BookingRecord, error) {
	params := url.Values{
		"method": {"search"},
		"phone":  {phone},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.BookingRecord{}, domain.InternalError{Msg: "sheetstore: build search request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.BookingRecord{}, domain.UnavailableError{Service: "record store", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.BookingRecord{}, domain.UnavailableError{
			Service: "record store",
			Err:     fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return domain.BookingRecord{}, domain.UnavailableError{Service: "record store", Err: fmt.Errorf("decode response: %w", err)}
	}
	// A body without the success marker is some other shape entirely; flag it
	// rather than guessing.
	if sr.Success == nil {
		return domain.BookingRecord{}, domain.UnavailableError{Service: "record store", Err: fmt.Errorf("unrecognized response shape")}
	}
	if !*sr.Success || sr.Booking == nil {
		return domain.BookingRecord{}, domain.NotFoundError{Resource: "booking"}
	}

	return sr.Booking.normalize(), nil
}

type searchResponse struct {
	Success *bool         `json:"success"`
	Booking *sheetBooking `json:"booking"`
	Message string        `json:"message"`
}

// sheetBooking mirrors the sheet's own column labels. Numeric cells come back
// as numbers or strings depending on how the row was written, so the numeric
// fields decode tolerantly.
type sheetBooking struct {
	BookingID   string    `json:"BookingID"`
	Name        string    `json:"Name"`
	Phone       string    `json:"Phone"`
	Pickup      string    `json:"Pickup"`
	Drop        string    `json:"Drop"`
	Date        string    `json:"Date"`
	Bus         string    `json:"Bus"`
	SeatNumbers cellInt   `json:"SeatNumbers"`
	Payment     string    `json:"Payment"`
	TotalAmount cellInt   `json:"TotalAmount"`
	Time        cellValue `json:"Time"`
}

func (b sheetBooking) normalize() domain.BookingRecord {
	return domain.BookingRecord{
		ID:            strings.TrimSpace(b.BookingID),
		Name:          strings.TrimSpace(b.Name),
		Phone:         strings.TrimSpace(b.Phone),
		From:          strings.TrimSpace(b.Pickup),
		To:            strings.TrimSpace(b.Drop),
		Date:          strings.TrimSpace(b.Date),
		Bus:           strings.TrimSpace(b.Bus),
		SeatCount:     int(b.SeatNumbers),
		TotalCost:     int64(b.TotalAmount),
		PaymentStatus: domain.NormalizePaymentStatus(b.Payment),
		CreatedAt:     string(b.Time),
	}
}

// cellInt accepts 2, "2" or "" from the sheet.
type cellInt int64

func (v *cellInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		*v = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric cell %q: %w", s, err)
	}
	*v = cellInt(f)
	return nil
}

// cellValue accepts any scalar cell as its string form.
type cellValue string

func (v *cellValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = ""
		return nil
	}
	*v = cellValue(strings.Trim(s, `"`))
	return nil
}
