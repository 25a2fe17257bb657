package services

import (
	"testing"
)

// sampleProposal is a normalized proposal used by the renderer tests.
func sampleProposal() ProposalResponse {
	discounted := 1200.0
	return Normalize(ProposalPayload{
		Client: ClientInfo{
			Name:    "Deyomkar Dot Com Private Limited",
			Address: "12 MG Road, Pune",
			GSTIN:   "27ABCDE1234F1Z5",
		},
		Proposal: ProposalMeta{
			PreparedBy: "Mayur & Company",
			Date:       "15 Aug 2026",
			Terms:      "Fees are exclusive of GST. Out-of-pocket expenses billed at actuals.",
		},
		Services: []ProposalService{
			{ID: "tax-1", Category: "Income Tax", Service: "Income Tax Return - Company", ScopeOfWork: "Computation and e-filing.", BillingCycle: "Yearly", Price: 10000},
			{ID: "gst-1", Category: "GST", Service: "GST Return Filing", BillingCycle: "Monthly", Price: 1500, DiscountedPrice: &discounted},
		},
	})
}

func assertPDF(t *testing.T, data []byte) {
	t.Helper()
	if len(data) == 0 {
		t.Fatal("renderer returned empty bytes")
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Fatalf("result does not start with PDF header, got %q", string(data[:min(5, len(data))]))
	}
}

func TestGenerateServicesSheetPDF(t *testing.T) {
	result, err := GenerateServicesSheetPDF(sampleProposal())
	if err != nil {
		t.Fatalf("GenerateServicesSheetPDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateServicesSheetPDF_EmptyServices(t *testing.T) {
	result, err := GenerateServicesSheetPDF(Normalize(ProposalPayload{}))
	if err != nil {
		t.Fatalf("GenerateServicesSheetPDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateEngagementLetterPDF(t *testing.T) {
	result, err := GenerateEngagementLetterPDF(sampleProposal())
	if err != nil {
		t.Fatalf("GenerateEngagementLetterPDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateCoverLetterPDF(t *testing.T) {
	result, err := GenerateCoverLetterPDF(
		ClientInfo{Name: "Acme Pvt Ltd"},
		ProposalMeta{PreparedFor: "Acme Pvt Ltd", PreparedBy: "Mayur & Company", Date: "15 Aug 2026"},
	)
	if err != nil {
		t.Fatalf("GenerateCoverLetterPDF() error = %v", err)
	}
	assertPDF(t, result)
}

func TestGenerateCoverLetterPDF_DefaultsPreparedFor(t *testing.T) {
	result, err := GenerateCoverLetterPDF(ClientInfo{}, ProposalMeta{})
	if err != nil {
		t.Fatalf("GenerateCoverLetterPDF() error = %v", err)
	}
	assertPDF(t, result)
}
