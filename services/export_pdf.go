package services

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the printable quote document using
// maroto/v2 and returns the raw PDF bytes. Row flow and page breaks
// are delegated to maroto, so category tables never overlap.
func GenerateQuotePDF(data QuoteExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).
		WithTopMargin(14).
		WithRightMargin(14).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data.Emblem)
	addMetadataTable(m, data.Metadata)

	for _, cat := range data.Categories {
		addCategoryTable(m, cat)
	}

	addGrandTotal(m, data.Total)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the shop title and subtitle with the emblem
// placed top-right. A nil emblem leaves the right column empty.
func addQuoteHeader(m core.Maroto, emblem []byte) {
	titleCol := col.New(8).Add(
		text.New("JMC Repair", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
		}),
		text.New("Presupuesto de servicios mecánicos", props.Text{
			Size: 11,
			Top:  10,
		}),
	)

	emblemCol := col.New(4)
	if validEmblem(emblem) {
		emblemCol = image.NewFromBytesCol(4, emblem, extension.Jpg, props.Rect{
			Center:  true,
			Percent: 90,
		})
	}

	m.AddRows(
		row.New(18).Add(titleCol, emblemCol),
		row.New(4),
	)
}

// validEmblem reports whether the emblem bytes decode as JPEG.
// Corrupt or wrong-format bytes are logged and the document renders
// without the emblem; the export itself must always complete.
func validEmblem(emblem []byte) bool {
	if len(emblem) == 0 {
		return false
	}
	if _, err := jpeg.DecodeConfig(bytes.NewReader(emblem)); err != nil {
		log.Printf("export_pdf: emblem ignored: %v", err)
		return false
	}
	return true
}

// addMetadataTable adds the two-column client/vehicle table.
func addMetadataTable(m core.Maroto, rows []MetadataRow) {
	headerBg := &props.Color{Red: 230, Green: 230, Blue: 230}
	headerCell := &props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
	}

	m.AddRows(
		row.New(5).Add(
			col.New(3).Add(text.New("Dato", headerText)).WithStyle(headerCell),
			col.New(9).Add(text.New("Información", headerText)).WithStyle(headerCell),
		),
	)

	cellText := props.Text{Size: 7}
	for _, r := range rows {
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(r.Label, cellText)),
				col.New(9).Add(text.New(r.Value, cellText)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addCategoryTable adds one category heading, its item table and the
// summary block below it. The labor category gets a three-line summary
// (base, IVA, subtotal with tax included); every other category a
// single subtotal line.
func addCategoryTable(m core.Maroto, cat ExportCategory) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(cat.Label, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
			})),
		),
	)

	headerBg := &props.Color{Red: 230, Green: 230, Blue: 230}
	headerCell := &props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New("Descripción", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Precio unitario", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Cantidad", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Valor", headerTextRight)).WithStyle(headerCell),
		),
	)

	cellText := props.Text{Size: 7}
	cellTextRight := cellText
	cellTextRight.Align = align.Right

	for _, item := range cat.Items {
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(item.Description, cellText)),
				col.New(2).Add(text.New(currencyCell(item.UnitPrice), cellTextRight)),
				col.New(2).Add(text.New(quantityCell(item.Quantity), cellTextRight)),
				col.New(2).Add(text.New(currencyCell(item.LineTotal), cellTextRight)),
			),
		)
	}

	summaryText := props.Text{Size: 9, Style: fontstyle.Bold}
	for _, line := range categorySummaryLines(cat) {
		m.AddRows(
			row.New(5).Add(col.New(12).Add(
				text.New(fmt.Sprintf("%s: %s", line.Label, FormatCLP(line.Amount)), summaryText),
			)),
		)
	}

	m.AddRows(row.New(4))
}

// addGrandTotal adds the closing TOTAL line.
func addGrandTotal(m core.Maroto, total float64) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(fmt.Sprintf("TOTAL: %s", FormatCLP(total)), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
			})),
		),
	)
}
