package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

// HandleExportDocument renders a single services-bearing PDF (services sheet
// or engagement letter) from the posted proposal payload.
func HandleExportDocument(app *pocketbase.PocketBase, ex *services.Exporter, kind services.DocumentKind) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload services.ProposalPayload
		if err := readJSON(e, &payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid proposal payload")
		}

		pdf, err := ex.ExportDocument(kind, payload)
		if err != nil {
			return exportError(e, "export_document", err)
		}

		filename := string(kind) + "_" + sanitizeFilename(payload.Proposal.PreparedFor) + ".pdf"
		return writeDownload(e, "application/pdf", filename, pdf)
	}
}

// HandleExportFinal renders and merges the complete proposal bundle:
// cover letter, services sheet, then the standard terms trailer.
func HandleExportFinal(app *pocketbase.PocketBase, ex *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload services.ProposalPayload
		if err := readJSON(e, &payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid proposal payload")
		}

		pdf, err := ex.ExportFinalBundle(payload)
		if err != nil {
			return exportError(e, "export_final", err)
		}

		filename := "Proposal_" + sanitizeFilename(payload.Client.Name) + ".pdf"
		return writeDownload(e, "application/pdf", filename, pdf)
	}
}

// HandleExportServicesExcel renders the Excel rendition of the services
// sheet. Normalization runs in-process; the same empty-selection rule as the
// PDF exports applies.
func HandleExportServicesExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload services.ProposalPayload
		if err := readJSON(e, &payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid proposal payload")
		}
		if len(payload.Services) == 0 {
			return errorJSON(e, http.StatusBadRequest, services.ErrEmptySelection.Error())
		}

		xlsx, err := services.GenerateServicesExcel(services.Normalize(payload))
		if err != nil {
			log.Printf("export_excel: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := "Services_" + sanitizeFilename(payload.Proposal.PreparedFor) + ".xlsx"
		return writeDownload(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, xlsx)
	}
}

// exportError maps exporter failures onto user-facing responses. Collaborator
// failures never surface their internals.
func exportError(e *core.RequestEvent, op string, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptySelection),
		errors.Is(err, services.ErrMissingClientName):
		return errorJSON(e, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrExportInFlight):
		return errorJSON(e, http.StatusConflict, err.Error())
	}

	var terr *services.TransportError
	if errors.As(err, &terr) {
		log.Printf("%s: collaborator failure: %v", op, err)
		return errorJSON(e, http.StatusBadGateway, "Unable to complete the export. Please try again.")
	}

	log.Printf("%s: %v", op, err)
	return errorJSON(e, http.StatusInternalServerError, "Unable to complete the export. Please try again.")
}
