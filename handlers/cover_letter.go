package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

type coverLetterRequest struct {
	Client   services.ClientInfo   `json:"client"`
	Proposal services.ProposalMeta `json:"proposal"`
}

// HandleCoverLetter renders the proposal cover page for a client. A blank
// client name is rejected before any rendering happens.
func HandleCoverLetter(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req coverLetterRequest
		if err := readJSON(e, &req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(req.Client.Name) == "" {
			return errorJSON(e, http.StatusBadRequest, "Client name is required")
		}

		pdf, err := services.GenerateCoverLetterPDF(req.Client, req.Proposal)
		if err != nil {
			log.Printf("cover_letter: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate cover letter")
		}

		filename := "Cover_" + sanitizeFilename(req.Client.Name) + ".pdf"
		return writeDownload(e, "application/pdf", filename, pdf)
	}
}
