package handlers

import (
	"net/http"
	"strings"

	"laganbus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type assistantRequest struct {
	Query string `json:"query"`
}

// AskAssistant relays a free-text travel question. The reply is always 200:
// endpoint failures degrade to the canned fallback inside the service.
func (a *API) AskAssistant(c *gin.Context) {
	var req assistantRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "query is required")
		return
	}

	svc := a.adviceService(middleware.GetRequestID(c))
	c.JSON(http.StatusOK, gin.H{"reply": svc.Advise(c.Request.Context(), req.Query)})
}
