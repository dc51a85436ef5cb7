package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"presupuestos/handlers"
)

func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static (the quote form and the
		// shop emblem used by the PDF export).
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quote API ────────────────────────────────────────────
		se.Router.GET("/api/brands", handlers.HandleBrandOptions(app))
		se.Router.POST("/api/presupuesto/ledger", handlers.HandleQuoteLedger(app))

		// ── Exports ──────────────────────────────────────────────
		se.Router.POST("/api/presupuesto/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.POST("/api/presupuesto/export/csv", handlers.HandleQuoteExportCSV(app))
		se.Router.POST("/api/presupuesto/export/xlsx", handlers.HandleQuoteExportExcel(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
