package handlers

import (
	"net/http"

	"laganbus/internal/catalog"

	"github.com/gin-gonic/gin"
)

// GetCatalog serves the fixed commercial data the booking form renders:
// cities, coach services with fares, seat bounds, bank and support details.
func (a *API) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency":  catalog.Currency,
		"cities":    a.Catalog.Cities(),
		"services":  a.Catalog.Services(),
		"min_seats": catalog.MinSeats,
		"max_seats": catalog.MaxSeats,
		"bank":      a.Catalog.Bank(),
		"support":   a.Catalog.Support(),
	})
}
