package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

// HandleTermsDocument serves the static terms-and-conditions trailer PDF that
// closes every final proposal bundle.
func HandleTermsDocument(staticDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := os.ReadFile(filepath.Join(staticDir, services.TrailerFileName))
		if err != nil {
			log.Printf("terms_document: %v", err)
			return errorJSON(e, http.StatusNotFound, "Terms document not available")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(data)
		return err
	}
}
