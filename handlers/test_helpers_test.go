package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"presupuestos/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newQuoteRequest builds a POST request carrying the quote state as JSON.
func newQuoteRequest(t *testing.T, path string, quote services.Quote) *http.Request {
	t.Helper()

	body, err := json.Marshal(quote)
	if err != nil {
		t.Fatalf("marshal quote: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// scenarioQuote returns the standard three-section quote used across
// the handler tests: 50000 in parts, 100000 in labor, blank supplies.
func scenarioQuote() services.Quote {
	return services.Quote{
		Client: services.ClientData{ClientName: "Juan Soto", Plate: "ABCD12"},
		Categories: []services.Category{
			{Key: "repuestos", Label: "Repuestos", Items: []services.LineItem{
				{Description: "Pastillas de freno", UnitPrice: "50000", Quantity: "1"},
			}},
			{Key: services.LaborCategoryKey, Label: "Mano de obra", Items: []services.LineItem{
				{Description: "Cambio de frenos", UnitPrice: "100000", Quantity: "1"},
			}},
			{Key: "insumos", Label: "Insumos", Items: []services.LineItem{{}}},
		},
	}
}
