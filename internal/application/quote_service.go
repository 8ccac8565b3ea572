package application

import (
	"math/rand"

	"github.com/adipranaya/demo-dashboard-api/internal/domain/entity"
)

// catalog is fixed at compile time and never mutated, so Random needs no
// locking.
var catalog = []entity.Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Do what you can, with what you have, where you are.", Author: "Theodore Roosevelt"},
	{Text: "Simplicity is the ultimate sophistication.", Author: "Leonardo da Vinci"},
}

// QuoteService serves the static quote catalog.
type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// Random returns one quote chosen uniformly from the catalog.
func (s *QuoteService) Random() entity.Quote {
	return catalog[rand.Intn(len(catalog))]
}

// All returns the full catalog in its fixed order.
func (s *QuoteService) All() []entity.Quote {
	out := make([]entity.Quote, len(catalog))
	copy(out, catalog)
	return out
}
