package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adipranaya/demo-dashboard-api/internal/application"
)

// QuoteHandler serves GET /quote.
type QuoteHandler struct {
	Quotes *application.QuoteService
}

func NewQuoteHandler(quotes *application.QuoteService) *QuoteHandler {
	return &QuoteHandler{Quotes: quotes}
}

func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"quote":     h.Quotes.Random(),
		"timestamp": time.Now().UTC(),
	})
}
