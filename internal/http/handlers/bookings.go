package handlers

import (
	"net/http"

	"laganbus/internal/catalog"
	"laganbus/internal/domain"
	"laganbus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Bus       string `json:"bus"`
	SeatCount int    `json:"seat_count"`
}

// QuoteFare prices a selection without creating anything. An unknown service
// quotes at zero, which the form treats as an incomplete selection.
func (a *API) QuoteFare(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.SeatCount < 1 {
		req.SeatCount = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"bus":            req.Bus,
		"seat_count":     req.SeatCount,
		"price_per_seat": a.Catalog.Price(req.Bus),
		"total_cost":     a.Catalog.Fare(req.Bus, req.SeatCount),
		"currency":       catalog.Currency,
	})
}

// CreateBooking runs the submission workflow: validate, build the record,
// dispatch the cloud mirror write, hand back the WhatsApp deep-link. The
// response never waits on the store; cloud_sync says so explicitly.
func (a *API) CreateBooking(c *gin.Context) {
	var draft domain.BookingDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	svc := a.bookingService(middleware.GetRequestID(c))
	conf, err := svc.Submit(draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":      conf.Record,
		"message":      conf.Message,
		"whatsapp_url": conf.WhatsAppURL,
		"cloud_sync":   "dispatched",
	})
}

// LookupBooking fetches an existing booking by phone number.
func (a *API) LookupBooking(c *gin.Context) {
	svc := a.lookupService(middleware.GetRequestID(c))
	rec, err := svc.Lookup(c.Request.Context(), c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": rec})
}
