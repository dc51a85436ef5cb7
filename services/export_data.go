package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetadataRow is one label/value pair in the client and vehicle table.
type MetadataRow struct {
	Label string
	Value string
}

// ExportItem is a single line item with its numerics already parsed.
type ExportItem struct {
	Description string
	UnitPrice   float64
	Quantity    float64
	LineTotal   float64
}

// ExportCategory is one category block: its items in print order plus
// the ledger totals for the category.
type ExportCategory struct {
	Key      string
	Label    string
	Items    []ExportItem
	Base     float64
	Tax      float64
	Subtotal float64
}

// QuoteExport holds everything the PDF, CSV and Excel generators need.
// Each generator is a pure function of this value; the generators
// never consult the raw quote state directly.
type QuoteExport struct {
	Client     ClientData
	Metadata   []MetadataRow
	Categories []ExportCategory
	Total      float64
	Emblem     []byte // optional shop logo (JPEG); nil renders without it
}

// BuildQuoteExport flattens the quote state and its ledger into the
// shared export projection.
func BuildQuoteExport(quote Quote, ledger Ledger) QuoteExport {
	export := QuoteExport{
		Client:   quote.Client,
		Metadata: MetadataRows(quote.Client),
		Total:    ledger.Total,
	}

	for _, cat := range quote.Categories {
		totals := ledger.Categories[cat.Key]
		exportCat := ExportCategory{
			Key:      cat.Key,
			Label:    cat.Label,
			Base:     totals.Base,
			Tax:      totals.Tax,
			Subtotal: totals.Subtotal,
		}
		for _, item := range cat.Items {
			exportCat.Items = append(exportCat.Items, ExportItem{
				Description: item.Description,
				UnitPrice:   ParseAmount(item.UnitPrice),
				Quantity:    ParseQuantity(item.Quantity),
				LineTotal:   LineTotal(item),
			})
		}
		export.Categories = append(export.Categories, exportCat)
	}

	return export
}

// MetadataRows returns the client/vehicle table rows in their fixed
// print order. Absent text fields render as "-"; the mileage gets a
// " km" suffix when present.
func MetadataRows(client ClientData) []MetadataRow {
	brand := client.VehicleBrand
	if brand == "" {
		brand = "-"
	}
	vehicle := strings.TrimSpace(brand + " " + client.VehicleModel)

	mileage := "-"
	if client.VehicleMileage != "" {
		mileage = client.VehicleMileage + " km"
	}

	return []MetadataRow{
		{Label: "Cliente", Value: orDash(client.ClientName)},
		{Label: "Teléfono", Value: orDash(client.ClientPhone)},
		{Label: "Email", Value: orDash(client.ClientEmail)},
		{Label: "Vehículo", Value: vehicle},
		{Label: "Año", Value: orDash(client.VehicleYear)},
		{Label: "Kilometraje", Value: mileage},
		{Label: "Patente", Value: orDash(client.Plate)},
	}
}

// summaryLine is one entry of a category summary block, shared by the
// PDF, CSV and Excel generators so the three outputs always agree.
type summaryLine struct {
	Label  string
	Amount float64
}

// categorySummaryLines returns the summary block for one category: a
// single subtotal line, or the base/IVA/subtotal-with-tax triple for
// the labor category.
func categorySummaryLines(cat ExportCategory) []summaryLine {
	if cat.Key != LaborCategoryKey {
		return []summaryLine{
			{Label: "Subtotal " + cat.Label, Amount: cat.Subtotal},
		}
	}
	return []summaryLine{
		{Label: "Subtotal " + cat.Label, Amount: cat.Base},
		{Label: fmt.Sprintf("IVA (%.0f%%)", LaborTaxRate*100), Amount: cat.Tax},
		{Label: "Subtotal " + cat.Label + " (IVA incluido)", Amount: cat.Subtotal},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// currencyCell renders an amount for a document cell: currency
// formatted, but empty for zero so blank draft rows stay blank.
func currencyCell(v float64) string {
	if v == 0 {
		return ""
	}
	return FormatCLP(v)
}

// quantityCell renders a quantity: whole numbers without decimals,
// fractional values with two, and zero as an empty cell.
func quantityCell(v float64) string {
	if v == 0 {
		return ""
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// numberCell renders a plain numeric value for tabular output, with
// zero as an empty cell to match the printable document.
func numberCell(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
