package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates a styled Excel workbook carrying the same
// rows as the CSV export plus the client/vehicle block, and returns
// the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Presupuesto"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through E).
	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1] // "E"

	widths := []float64{22, 42, 16, 10, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	metadataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create metadata style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "JMC Repair")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Presupuesto de servicios mecánicos")
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Client/vehicle block (starting row 4) ───────────────────────────

	row := 4
	for _, meta := range data.Metadata {
		rowStr := fmt.Sprintf("%d", row)
		// The "-" placeholder for absent fields is generated
		// server-side, not operator input; sanitizing it would show
		// a stray apostrophe in the workbook.
		value := meta.Value
		if value != "-" {
			value = sanitizeExcelCell(value)
		}
		f.SetCellValue(sheetName, "A"+rowStr, meta.Label)
		f.SetCellValue(sheetName, "B"+rowStr, value)
		f.SetCellStyle(sheetName, "A"+rowStr, "B"+rowStr, metadataStyle)
		row++
	}
	row++

	// ── Column headers ──────────────────────────────────────────────────

	headerRow := fmt.Sprintf("%d", row)
	for i, h := range csvHeader {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)

	// Keep the column headers visible while scrolling the item rows.
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: fmt.Sprintf("A%d", row+1),
		ActivePane:  "bottomLeft",
	})
	row++

	// ── Item and summary rows ───────────────────────────────────────────

	for _, cat := range data.Categories {
		for _, item := range cat.Items {
			rowStr := fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(cat.Label))
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Description))
			f.SetCellValue(sheetName, "C"+rowStr, currencyCell(item.UnitPrice))
			f.SetCellValue(sheetName, "D"+rowStr, quantityCell(item.Quantity))
			f.SetCellValue(sheetName, "E"+rowStr, currencyCell(item.LineTotal))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
			row++
		}

		for _, line := range categorySummaryLines(cat) {
			rowStr := fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, line.Label)
			f.SetCellValue(sheetName, "E"+rowStr, currencyCell(line.Amount))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, summaryStyle)
			row++
		}
	}

	// ── Grand total ─────────────────────────────────────────────────────

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "A"+totalRow, "TOTAL")
	f.SetCellValue(sheetName, "E"+totalRow, FormatCLP(data.Total))
	f.SetCellStyle(sheetName, "A"+totalRow, lastCol+totalRow, totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells
// starting with =, +, -, @, \t or \r as formulas, which can be abused
// for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
