package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

// HandleServiceList returns the full service catalog in catalog order:
// built-ins by their seed order, custom items after them by creation time.
func HandleServiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("services", "id != ''", "sort_order,created", 0, 0)
		if err != nil {
			log.Printf("service_list: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Unable to load services")
		}

		items := make([]services.ServiceItem, 0, len(records))
		for _, r := range records {
			items = append(items, recordToItem(r))
		}
		return writeJSON(e, http.StatusOK, items)
	}
}

// HandleServiceCreate validates and persists a custom service. The draft is
// validated by the same rules the in-session catalog applies, so a record
// that fails validation is never written.
func HandleServiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var draft services.ServiceDraft
		if err := readJSON(e, &draft); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}

		// Validate through a scratch catalog; no state mutates on failure.
		item, err := services.NewCatalog().AddCustom(draft)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return errorJSON(e, http.StatusBadRequest, verr.Message)
			}
			log.Printf("service_create: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("services")
		if err != nil {
			log.Printf("service_create: collection not found: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("category", item.Category)
		record.Set("service", item.Service)
		record.Set("scope_of_work", item.ScopeOfWork)
		record.Set("price", item.Price)
		record.Set("billing_cycle", item.BillingCycle)
		record.Set("custom", true)
		if err := app.Save(record); err != nil {
			log.Printf("service_create: save failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return writeJSON(e, http.StatusCreated, recordToItem(record))
	}
}
