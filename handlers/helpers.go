package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/services"
)

// writeJSON encodes v and writes it as an application/json response.
func writeJSON(e *core.RequestEvent, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	e.Response.Header().Set("Content-Type", "application/json")
	e.Response.WriteHeader(status)
	_, err = e.Response.Write(data)
	return err
}

// readJSON decodes the request body into v.
func readJSON(e *core.RequestEvent, v any) error {
	body, err := io.ReadAll(e.Request.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// errorJSON writes a {"message": ...} error body.
func errorJSON(e *core.RequestEvent, status int, message string) error {
	return writeJSON(e, status, map[string]string{"message": message})
}

// writeDownload writes binary content with attachment headers.
func writeDownload(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(data)
	return err
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// recordToItem maps a services record to the engine's catalog item.
func recordToItem(r *core.Record) services.ServiceItem {
	return services.ServiceItem{
		ID:           r.Id,
		Category:     r.GetString("category"),
		Service:      r.GetString("service"),
		ScopeOfWork:  r.GetString("scope_of_work"),
		Price:        r.GetFloat("price"),
		BillingCycle: r.GetString("billing_cycle"),
	}
}
