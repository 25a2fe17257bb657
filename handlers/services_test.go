package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"proposalmaker/services"
	"proposalmaker/testhelpers"
)

func TestHandleServiceList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "GST", "GST Returns", 1500, "Monthly")
	testhelpers.CreateTestService(t, app, "Income Tax", "ITR Filing", 5000, "Yearly")

	handler := HandleServiceList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var items []services.ServiceItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 services, got %d", len(items))
	}
	if items[0].Service != "GST Returns" || items[1].Service != "ITR Filing" {
		t.Errorf("unexpected order: %q, %q", items[0].Service, items[1].Service)
	}
}

func TestHandleServiceList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleServiceList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %q", body)
	}
}

func TestHandleServiceCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleServiceCreate(app)

	body := `{"category":"Advisory","service":"Valuation Report","scopeOfWork":"Business valuation","price":"25000","billingCycle":"One-time"}`
	req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var item services.ServiceItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.Service != "Valuation Report" || item.Price != 25000 {
		t.Errorf("unexpected item: %+v", item)
	}

	records, err := app.FindRecordsByFilter("services", "custom = true", "", 0, 0)
	if err != nil {
		t.Fatalf("query services: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 custom record, got %d", len(records))
	}
	if records[0].GetString("service") != "Valuation Report" {
		t.Errorf("persisted service = %q", records[0].GetString("service"))
	}
}

func TestHandleServiceCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing service name", `{"category":"Advisory","price":"1000","billingCycle":"Monthly"}`},
		{"missing category", `{"service":"Something","price":"1000","billingCycle":"Monthly"}`},
		{"non-numeric price", `{"category":"Advisory","service":"Something","price":"abc","billingCycle":"Monthly"}`},
		{"negative price", `{"category":"Advisory","service":"Something","price":"-5","billingCycle":"Monthly"}`},
		{"malformed json", `{"category":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)

			handler := HandleServiceCreate(app)

			req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}

			records, err := app.FindRecordsByFilter("services", "id != ''", "", 0, 0)
			if err != nil {
				t.Fatalf("query services: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("invalid draft was persisted: %d records", len(records))
			}
		})
	}
}
