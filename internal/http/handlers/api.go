package handlers

import (
	"context"
	"time"

	"laganbus/internal/catalog"
	"laganbus/internal/domain"
	"laganbus/internal/services"
)

// RecordStore is the full surface of the external record store.
type RecordStore interface {
	Add(ctx context.Context, rec domain.BookingRecord) error
	FindByPhone(ctx context.Context, phone string) (domain.BookingRecord, error)
}

// API carries the process-wide collaborators; services are assembled per
// request so they pick up the request id.
type API struct {
	Catalog     catalog.Catalog
	Store       RecordStore
	Advisor     services.ReplyGenerator
	AdminPhone  string
	SyncTimeout time.Duration
}

func (a *API) bookingService(requestID string) services.BookingService {
	return services.BookingService{
		Catalog:     a.Catalog,
		Store:       a.Store,
		AdminPhone:  a.AdminPhone,
		SyncTimeout: a.SyncTimeout,
		RequestID:   requestID,
	}
}

func (a *API) lookupService(requestID string) services.LookupService {
	return services.LookupService{Store: a.Store, RequestID: requestID}
}

func (a *API) adviceService(requestID string) services.AdviceService {
	return services.AdviceService{Advisor: a.Advisor, RequestID: requestID}
}
