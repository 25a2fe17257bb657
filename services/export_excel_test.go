package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateServicesExcel(t *testing.T) {
	result, err := GenerateServicesExcel(sampleProposal())
	if err != nil {
		t.Fatalf("GenerateServicesExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateServicesExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Service Proposal" {
		t.Errorf("expected sheet name 'Service Proposal', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != FirmName {
		t.Errorf("expected title %q, got %q", FirmName, title)
	}

	preparedFor, _ := f.GetCellValue(sheets[0], "A2")
	if preparedFor != "Prepared for: Deyomkar Dot Com Private Limited" {
		t.Errorf("unexpected prepared-for cell %q", preparedFor)
	}

	// Row 6 is the first category band, row 7 the first service.
	category, _ := f.GetCellValue(sheets[0], "A6")
	if category != "Income Tax" {
		t.Errorf("expected category band 'Income Tax', got %q", category)
	}
	service, _ := f.GetCellValue(sheets[0], "B7")
	if service != "Income Tax Return - Company" {
		t.Errorf("expected first service row, got %q", service)
	}
}

func TestGenerateServicesExcel_EmptyServices(t *testing.T) {
	result, err := GenerateServicesExcel(Normalize(ProposalPayload{}))
	if err != nil {
		t.Fatalf("GenerateServicesExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateServicesExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Bookkeeping", "Bookkeeping"},
		{"formula", "=SUM(A1)", "'=SUM(A1)"},
		{"plus", "+1500", "'+1500"},
		{"minus", "-discount", "'-discount"},
		{"at", "@firm", "'@firm"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
