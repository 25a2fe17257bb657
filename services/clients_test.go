package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
)

func TestHTTPCollaboratorListServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/services" {
			t.Errorf("request = %s %s, want GET /api/services", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"gst-1","category":"GST","service":"GST Returns","price":1500,"billingCycle":"Monthly"}]`))
	}))
	defer srv.Close()

	c := NewHTTPCollaborator(srv.URL)
	items, err := c.ListServices()
	if err != nil {
		t.Fatalf("ListServices() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != "gst-1" || items[0].Price != 1500 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

type failingSource struct{}

func (failingSource) ListServices() ([]ServiceItem, error) {
	return nil, &TransportError{Op: "list_services", Status: http.StatusBadGateway}
}

func TestSessionLoadCatalog_FailureLeavesCatalogEmpty(t *testing.T) {
	s := NewSession()
	defer s.Close()

	s.LoadCatalog(failingSource{})

	if s.Catalog.Len() != 0 {
		t.Errorf("catalog length = %d, want 0", s.Catalog.Len())
	}
	// The session stays usable: a custom item can still be added.
	if _, err := s.AddCustomService(ServiceDraft{
		Service: "Advisory Call", Category: "Advisory", Price: "1000", BillingCycle: "One-off",
	}); err != nil {
		t.Fatalf("AddCustomService() after failed load: %v", err)
	}
	if s.Catalog.Len() != 1 {
		t.Errorf("catalog length = %d, want 1", s.Catalog.Len())
	}
}

func TestHTTPCollaboratorNormalizeProposal(t *testing.T) {
	var gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		var payload ProposalPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Normalize(payload)); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	c := NewHTTPCollaborator(srv.URL)
	resp, err := c.NormalizeProposal(samplePayload())
	if err != nil {
		t.Fatalf("NormalizeProposal() error = %v", err)
	}

	if gotPath != "/api/proposal" {
		t.Errorf("path = %q, want /api/proposal", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	if resp.Summary.Count != 2 {
		t.Errorf("summary count = %d, want 2", resp.Summary.Count)
	}
	if resp.Summary.Total != 5500 {
		t.Errorf("summary total = %v, want 5500", resp.Summary.Total)
	}
}

func TestHTTPCollaboratorNormalizeProposal_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPCollaborator(srv.URL)
	_, err := c.NormalizeProposal(samplePayload())

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if te.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", te.Status)
	}
}

func TestHTTPCollaboratorRenderCoverLetter(t *testing.T) {
	pdf, err := GenerateCoverLetterPDF(ClientInfo{Name: "Acme"}, ProposalMeta{})
	if err != nil {
		t.Fatalf("cover fixture: %v", err)
	}
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c := NewHTTPCollaborator(srv.URL)
	out, err := c.RenderCoverLetter(ClientInfo{Name: "Acme"}, ProposalMeta{})
	if err != nil {
		t.Fatalf("RenderCoverLetter() error = %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/cover-letter" {
		t.Errorf("request = %s %s, want POST /api/cover-letter", gotMethod, gotPath)
	}
	assertPDF(t, out)
}

func TestHTTPCollaboratorFetchTrailer(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte("%PDF-1.7 trailer"))
	}))
	defer srv.Close()

	c := NewHTTPCollaborator(srv.URL)
	out, err := c.FetchTrailer()
	if err != nil {
		t.Fatalf("FetchTrailer() error = %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/terms-document" {
		t.Errorf("request = %s %s, want GET /api/terms-document", gotMethod, gotPath)
	}
	if string(out) != "%PDF-1.7 trailer" {
		t.Errorf("body = %q", out)
	}
}

func TestLocalCollaborator(t *testing.T) {
	dir := t.TempDir()
	trailerDoc, err := GenerateCoverLetterPDF(ClientInfo{Name: "Terms"}, ProposalMeta{})
	if err != nil {
		t.Fatalf("trailer fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, TrailerFileName), trailerDoc, 0o644); err != nil {
		t.Fatalf("write trailer: %v", err)
	}

	l := Local{StaticDir: dir}

	resp, err := l.NormalizeProposal(samplePayload())
	if err != nil {
		t.Fatalf("NormalizeProposal() error = %v", err)
	}
	if resp.Summary.Count != 2 {
		t.Errorf("summary count = %d, want 2", resp.Summary.Count)
	}

	cover, err := l.RenderCoverLetter(ClientInfo{Name: "Acme"}, ProposalMeta{})
	if err != nil {
		t.Fatalf("RenderCoverLetter() error = %v", err)
	}
	assertPDF(t, cover)

	trailer, err := l.FetchTrailer()
	if err != nil {
		t.Fatalf("FetchTrailer() error = %v", err)
	}
	assertPDF(t, trailer)
}

func TestLocalCollaborator_MissingTrailer(t *testing.T) {
	l := Local{StaticDir: t.TempDir()}
	_, err := l.FetchTrailer()

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
}
