package services

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Validation failures surfaced to the user before any collaborator call.
var (
	ErrEmptySelection    = errors.New("select at least one service before exporting")
	ErrMissingClientName = errors.New("enter the client name before exporting")
	ErrExportInFlight    = errors.New("this export is already in progress")
)

// DocumentKind names the single-document exports.
type DocumentKind string

const (
	DocumentServicesSheet    DocumentKind = "services-sheet"
	DocumentEngagementLetter DocumentKind = "engagement-letter"
)

// Exporter orchestrates document exports. Each export kind carries its own
// in-flight flag so the same export cannot run twice concurrently; distinct
// kinds stay independent. Callers pass a payload snapshot built at click
// time, so selection changes made while a collaborator call is pending never
// leak into the document.
type Exporter struct {
	normalizer Normalizer
	cover      CoverLetterRenderer
	trailer    TrailerSource

	sheetInFlight  atomic.Bool
	letterInFlight atomic.Bool
	bundleInFlight atomic.Bool
}

func NewExporter(n Normalizer, c CoverLetterRenderer, t TrailerSource) *Exporter {
	return &Exporter{normalizer: n, cover: c, trailer: t}
}

// ExportDocument produces a single services-bearing PDF of the given kind:
// the payload is normalized through the collaborator, then rendered locally.
// Preconditions run before any collaborator call; a collaborator failure
// aborts with no partial artifact.
func (ex *Exporter) ExportDocument(kind DocumentKind, payload ProposalPayload) ([]byte, error) {
	var flag *atomic.Bool
	switch kind {
	case DocumentServicesSheet:
		flag = &ex.sheetInFlight
	case DocumentEngagementLetter:
		flag = &ex.letterInFlight
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}

	if !flag.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer flag.Store(false)

	if len(payload.Services) == 0 {
		return nil, ErrEmptySelection
	}

	resp, err := ex.normalizer.NormalizeProposal(payload)
	if err != nil {
		return nil, err
	}

	switch kind {
	case DocumentEngagementLetter:
		return GenerateEngagementLetterPDF(resp)
	default:
		return GenerateServicesSheetPDF(resp)
	}
}

// ExportFinalBundle builds the merged final proposal: cover letter, services
// sheet, then the static trailer, in that fixed order. Any sub-step failing
// fails the whole export; no partially merged file is offered.
func (ex *Exporter) ExportFinalBundle(payload ProposalPayload) ([]byte, error) {
	if !ex.bundleInFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer ex.bundleInFlight.Store(false)

	if len(payload.Services) == 0 {
		return nil, ErrEmptySelection
	}
	if isBlank(payload.Client.Name) {
		return nil, ErrMissingClientName
	}

	cover, err := ex.cover.RenderCoverLetter(payload.Client, payload.Proposal)
	if err != nil {
		return nil, err
	}

	resp, err := ex.normalizer.NormalizeProposal(payload)
	if err != nil {
		return nil, err
	}
	sheet, err := GenerateServicesSheetPDF(resp)
	if err != nil {
		return nil, err
	}

	trailer, err := ex.trailer.FetchTrailer()
	if err != nil {
		return nil, err
	}

	return MergeDocuments(cover, sheet, trailer)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
