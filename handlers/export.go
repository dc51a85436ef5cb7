package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"presupuestos/services"
)

// emblemPath is where the shop logo lives, relative to the working
// directory; it is served from the same static directory the UI uses.
const emblemPath = "static/logo-jmc.jpg"

// buildQuoteExport computes the ledger for the posted quote and
// flattens both into the projection shared by all three exporters.
func buildQuoteExport(quote services.Quote) services.QuoteExport {
	ledger := services.ComputeLedger(quote.Categories)
	return services.BuildQuoteExport(quote, ledger)
}

// loadEmblem reads the shop logo for the PDF header. A missing or
// unreadable file is logged and the document renders without it.
func loadEmblem() []byte {
	data, err := os.ReadFile(emblemPath)
	if err != nil {
		log.Printf("export_pdf: emblem unavailable: %v", err)
		return nil
	}
	return data
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "-")
	return s
}

// pdfFilename derives the document name from the client and plate,
// with fixed fallbacks when either is absent.
func pdfFilename(client services.ClientData) string {
	name := client.ClientName
	if name == "" {
		name = "cliente"
	}
	plate := client.Plate
	if plate == "" {
		plate = "vehiculo"
	}
	return sanitizeFilename(fmt.Sprintf("presupuesto_%s_%s.pdf", name, plate))
}

// HandleQuoteExportPDF generates and downloads the printable quote.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := decodeQuote(e)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusBadRequest, "Invalid quote data")
		}

		data := buildQuoteExport(quote)
		data.Emblem = loadEmblem()

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFilename(quote.Client)))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportCSV generates and downloads the tabular quote file.
func HandleQuoteExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := decodeQuote(e)
		if err != nil {
			log.Printf("export_csv: %v", err)
			return e.String(http.StatusBadRequest, "Invalid quote data")
		}

		csvBytes, err := services.GenerateQuoteCSV(buildQuoteExport(quote))
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		e.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="presupuesto_jmc.csv"`)
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleQuoteExportExcel generates and downloads the styled workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quote, err := decodeQuote(e)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusBadRequest, "Invalid quote data")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(buildQuoteExport(quote))
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="presupuesto_jmc.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}
