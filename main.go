package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"proposalmaker/collections"
	"proposalmaker/handlers"
	"proposalmaker/services"
)

const staticDir = "./static"

func main() {
	app := pocketbase.New()

	// Operator command to (re)seed the built-in catalog without serving.
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create collections and insert the built-in service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Bootstrap(); err != nil {
				return err
			}
			collections.Setup(app)
			return collections.Seed(app)
		},
	})

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(staticDir), false))

		// One exporter for the process: the per-kind in-flight flags guard
		// against duplicate concurrent exports of the same kind.
		exporter := services.NewExporter(services.Local{StaticDir: staticDir},
			services.Local{StaticDir: staticDir}, services.Local{StaticDir: staticDir})

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/services", handlers.HandleServiceList(app))
		se.Router.POST("/api/services", handlers.HandleServiceCreate(app))

		// ── Proposal normalization ───────────────────────────────
		se.Router.POST("/api/proposal", handlers.HandleProposalNormalize(app))

		// ── Documents ────────────────────────────────────────────
		se.Router.POST("/api/cover-letter", handlers.HandleCoverLetter(app))
		se.Router.GET("/api/terms-document", handlers.HandleTermsDocument(staticDir))
		se.Router.POST("/api/export/services-sheet", handlers.HandleExportDocument(app, exporter, services.DocumentServicesSheet))
		se.Router.POST("/api/export/engagement-letter", handlers.HandleExportDocument(app, exporter, services.DocumentEngagementLetter))
		se.Router.POST("/api/export/services-sheet-excel", handlers.HandleExportServicesExcel(app))
		se.Router.POST("/api/export/final", handlers.HandleExportFinal(app, exporter))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
