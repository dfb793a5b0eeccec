package handlers

import (
	"net/http"

	"laganbus/internal/http/middleware"
	"laganbus/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTicketPDF looks the booking up by phone and serves the rendered pass
// inline. Rendering needs a fetched record, never a draft.
func (a *API) GetTicketPDF(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	rec, err := a.lookupService(reqID).Lookup(c.Request.Context(), c.Query("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdfBytes, filename, err := services.TicketService{RequestID: reqID}.GeneratePass(rec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
