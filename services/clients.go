package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// Collaborator interfaces consumed by the export orchestration. The HTTP
// implementations talk to the proposal backend; Local serves the same
// contracts in-process for a single-binary deployment.

// CatalogSource lists the selectable services at session start.
type CatalogSource interface {
	ListServices() ([]ServiceItem, error)
}

// Normalizer round-trips a payload through the proposal normalizer.
type Normalizer interface {
	NormalizeProposal(p ProposalPayload) (ProposalResponse, error)
}

// CoverLetterRenderer produces the cover-letter PDF for a client.
type CoverLetterRenderer interface {
	RenderCoverLetter(client ClientInfo, meta ProposalMeta) ([]byte, error)
}

// TrailerSource fetches the static terms-and-conditions trailer document.
type TrailerSource interface {
	FetchTrailer() ([]byte, error)
}

const defaultClientTimeout = 15 * time.Second

// HTTPCollaborator implements the collaborator interfaces over the backend's
// HTTP API.
type HTTPCollaborator struct {
	BaseURL string
	Timeout time.Duration
	client  *fasthttp.Client
}

func NewHTTPCollaborator(baseURL string) *HTTPCollaborator {
	return &HTTPCollaborator{
		BaseURL: baseURL,
		Timeout: defaultClientTimeout,
		client:  &fasthttp.Client{},
	}
}

// ListServices GETs the service catalog.
func (h *HTTPCollaborator) ListServices() ([]ServiceItem, error) {
	body, err := h.do("list_services", fasthttp.MethodGet, "/api/services", nil)
	if err != nil {
		return nil, err
	}
	var items []ServiceItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &TransportError{Op: "list_services", Err: fmt.Errorf("decode response: %w", err)}
	}
	return items, nil
}

// NormalizeProposal POSTs the payload to /api/proposal and decodes the
// normalized response.
func (h *HTTPCollaborator) NormalizeProposal(p ProposalPayload) (ProposalResponse, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return ProposalResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	respBody, err := h.post("normalize", "/api/proposal", body)
	if err != nil {
		return ProposalResponse{}, err
	}

	var resp ProposalResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return ProposalResponse{}, &TransportError{Op: "normalize", Err: fmt.Errorf("decode response: %w", err)}
	}
	return resp, nil
}

// RenderCoverLetter POSTs the client fields to /api/cover-letter and returns
// the PDF bytes.
func (h *HTTPCollaborator) RenderCoverLetter(client ClientInfo, meta ProposalMeta) ([]byte, error) {
	body, err := json.Marshal(struct {
		Client   ClientInfo   `json:"client"`
		Proposal ProposalMeta `json:"proposal"`
	}{client, meta})
	if err != nil {
		return nil, fmt.Errorf("encode cover letter request: %w", err)
	}
	return h.post("cover_letter", "/api/cover-letter", body)
}

// FetchTrailer GETs the static trailer document.
func (h *HTTPCollaborator) FetchTrailer() ([]byte, error) {
	return h.do("trailer", fasthttp.MethodGet, "/api/terms-document", nil)
}

func (h *HTTPCollaborator) post(op, path string, body []byte) ([]byte, error) {
	return h.do(op, fasthttp.MethodPost, path, body)
}

func (h *HTTPCollaborator) do(op, method, path string, body []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(h.BaseURL + path)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	timeout := h.Timeout
	if timeout == 0 {
		timeout = defaultClientTimeout
	}
	if err := h.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &TransportError{Op: op, Status: code}
	}

	// resp's buffer is pooled, copy before release.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}

// Local serves the collaborator contracts in-process: normalization runs
// directly, the cover letter is rendered locally and the trailer is read from
// the static assets directory.
type Local struct {
	StaticDir string
}

func (l Local) NormalizeProposal(p ProposalPayload) (ProposalResponse, error) {
	return Normalize(p), nil
}

func (l Local) RenderCoverLetter(client ClientInfo, meta ProposalMeta) ([]byte, error) {
	return GenerateCoverLetterPDF(client, meta)
}

func (l Local) FetchTrailer() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.StaticDir, TrailerFileName))
	if err != nil {
		return nil, &TransportError{Op: "trailer", Err: err}
	}
	return data, nil
}

// TrailerFileName is the static boilerplate document appended to every final
// proposal bundle.
const TrailerFileName = "terms.pdf"
