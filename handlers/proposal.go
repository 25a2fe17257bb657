package handlers

import (
	"log"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

// HandleProposalNormalize computes the summary for a proposal payload and
// returns the normalized proposal. Each successful normalization is also
// recorded in the proposals collection; a storage failure is logged but does
// not fail the request, since the caller only needs the normalized data.
func HandleProposalNormalize(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload services.ProposalPayload
		if err := readJSON(e, &payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid proposal payload")
		}

		resp := services.Normalize(payload)

		if err := storeProposal(app, resp); err != nil {
			log.Printf("proposal_normalize: store failed: %v", err)
		}

		return writeJSON(e, http.StatusOK, resp)
	}
}

func storeProposal(app *pocketbase.PocketBase, resp services.ProposalResponse) error {
	col, err := app.FindCollectionByNameOrId("proposals")
	if err != nil {
		return err
	}

	raw, err := json.Marshal(resp.ProposalPayload)
	if err != nil {
		return err
	}

	record := core.NewRecord(col)
	record.Set("client_name", resp.Client.Name)
	record.Set("prepared_for", resp.Proposal.PreparedFor)
	record.Set("prepared_by", resp.Proposal.PreparedBy)
	record.Set("payload", string(raw))
	record.Set("total", resp.Summary.Total)
	record.Set("service_count", resp.Summary.Count)
	return app.Save(record)
}
