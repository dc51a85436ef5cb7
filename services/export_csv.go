package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// csvHeader is the tabular export header row.
var csvHeader = []string{"Categoría", "Descripción", "Precio unitario", "Cantidad", "Valor"}

// GenerateQuoteCSV renders the quote as UTF-8 delimited text: one row
// per line item in category order, summary rows after each category
// block (the labor category gets base, IVA and subtotal rows) and a
// trailing TOTAL row. Fields containing the delimiter or quotes are
// escaped by encoding/csv; zero-valued numeric cells stay empty to
// match the printable document.
func GenerateQuoteCSV(data QuoteExport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{csvHeader}

	for _, cat := range data.Categories {
		for _, item := range cat.Items {
			records = append(records, []string{
				cat.Label,
				item.Description,
				numberCell(item.UnitPrice),
				numberCell(item.Quantity),
				numberCell(item.LineTotal),
			})
		}
		for _, line := range categorySummaryLines(cat) {
			records = append(records, []string{line.Label, "", "", "", numberCell(line.Amount)})
		}
	}

	records = append(records, []string{"TOTAL", "", "", "", numberCell(data.Total)})

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return buf.Bytes(), nil
}
