package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adipranaya/demo-dashboard-api/internal/interface/http"
)

// QuoteModule wires GET /quote.
type QuoteModule struct {
	Handler *handlers.QuoteHandler
}

func NewQuoteModule(h *handlers.QuoteHandler) *QuoteModule {
	return &QuoteModule{Handler: h}
}

func (m *QuoteModule) Register(rg *gin.RouterGroup) {
	rg.GET("/quote", m.Handler.RandomQuote)
}
