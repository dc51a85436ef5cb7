package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"presupuestos/services"
	"presupuestos/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Juan Soto", "Juan-Soto"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"colons", "file:name", "file-name"},
		{"quotes", `nombre "apodo"`, "nombre--apodo-"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPDFFilename(t *testing.T) {
	tests := []struct {
		name   string
		client services.ClientData
		want   string
	}{
		{"both present", services.ClientData{ClientName: "Juan", Plate: "ABCD12"}, "presupuesto_Juan_ABCD12.pdf"},
		{"missing client", services.ClientData{Plate: "ABCD12"}, "presupuesto_cliente_ABCD12.pdf"},
		{"missing plate", services.ClientData{ClientName: "Juan"}, "presupuesto_Juan_vehiculo.pdf"},
		{"both missing", services.ClientData{}, "presupuesto_cliente_vehiculo.pdf"},
		{"name with spaces", services.ClientData{ClientName: "Juan Soto", Plate: "AB CD"}, "presupuesto_Juan-Soto_AB-CD.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pdfFilename(tt.client)
			if got != tt.want {
				t.Errorf("pdfFilename(%+v) = %q, want %q", tt.client, got, tt.want)
			}
		})
	}
}

func TestHandleQuoteExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newQuoteRequest(t, "/api/presupuesto/export/pdf", scenarioQuote())
	rec := httptest.NewRecorder()

	if err := HandleQuoteExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	wantDisposition := `attachment; filename="presupuesto_Juan-Soto_ABCD12.pdf"`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}

	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Errorf("body does not start with PDF header")
	}
}

func TestHandleQuoteExportPDF_NoEmblemStillCompletes(t *testing.T) {
	// The emblem file is not present in the test working directory;
	// the export must still produce a complete document.
	app := testhelpers.NewTestApp(t)

	req := newQuoteRequest(t, "/api/presupuesto/export/pdf", services.Quote{})
	rec := httptest.NewRecorder()

	if err := HandleQuoteExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty PDF body")
	}
}

func TestHandleQuoteExportCSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newQuoteRequest(t, "/api/presupuesto/export/csv", scenarioQuote())
	rec := httptest.NewRecorder()

	if err := HandleQuoteExportCSV(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	wantDisposition := `attachment; filename="presupuesto_jmc.csv"`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}

	body := rec.Body.String()
	for _, fragment := range []string{
		"Categoría,Descripción,Precio unitario,Cantidad,Valor",
		"Subtotal Mano de obra,,,,100000",
		"IVA (19%),,,,19000",
		"Subtotal Mano de obra (IVA incluido),,,,119000",
		"TOTAL,,,,169000",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("CSV body missing %q:\n%s", fragment, body)
		}
	}
}

func TestHandleQuoteExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newQuoteRequest(t, "/api/presupuesto/export/xlsx", scenarioQuote())
	rec := httptest.NewRecorder()

	if err := HandleQuoteExportExcel(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", got)
	}
	wantDisposition := `attachment; filename="presupuesto_jmc.xlsx"`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}

	// xlsx files are zip archives: PK magic.
	body := rec.Body.Bytes()
	if len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Errorf("body does not look like an xlsx archive")
	}
}
