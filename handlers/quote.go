// Package handlers wires the quote endpoints: ledger recomputation,
// dropdown options and the PDF/CSV/Excel downloads. The form UI keeps
// the editable quote state and posts it whole with every request; no
// quote is ever persisted.
package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"presupuestos/services"
)

// decodeQuote reads the quote state from the request body and restores
// the at-least-one-item invariant on every category. A request without
// categories gets the default blank quote sections.
func decodeQuote(e *core.RequestEvent) (services.Quote, error) {
	var quote services.Quote
	if err := e.BindBody(&quote); err != nil {
		return services.Quote{}, fmt.Errorf("invalid quote payload: %w", err)
	}

	if len(quote.Categories) == 0 {
		quote.Categories = services.DefaultCategories()
	}
	quote.Categories = services.NormalizeCategories(quote.Categories)

	return quote, nil
}

// HandleQuoteLedger recomputes the ledger for the posted quote state
// and returns it as JSON.
func HandleQuoteLedger(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := decodeQuote(e)
		if err != nil {
			log.Printf("quote_ledger: %v", err)
			return e.String(http.StatusBadRequest, "Invalid quote data")
		}

		return e.JSON(http.StatusOK, services.ComputeLedger(quote.Categories))
	}
}

// HandleBrandOptions returns the vehicle brand dropdown options.
func HandleBrandOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, services.CarBrands)
	}
}
