package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateServicesExcel creates an Excel rendition of the services sheet:
// one row per selected service, grouped by category, with the proposal total
// at the bottom.
func GenerateServicesExcel(data ProposalResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Service Proposal"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Columns: # | Service | Scope of Work | Billing Cycle | Fee.
	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{6, 42, 50, 14, 16}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 15},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#244333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category style: %w", err)
	}

	serviceStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create service style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", FirmName)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge prepared-for: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Prepared for: "+sanitizeExcelCell(data.Proposal.PreparedFor))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if data.Proposal.Date != "" {
		if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
			return nil, fmt.Errorf("merge date: %w", err)
		}
		f.SetCellValue(sheetName, "A3", "Date: "+data.Proposal.Date)
		f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)
	}

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"#", "Service", "Scope of Work", "Billing Cycle", "Fee"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Service rows ────────────────────────────────────────────────────

	row := 6
	lastCategory := ""
	for i, svc := range data.Services {
		if svc.Category != lastCategory {
			rowStr := fmt.Sprintf("%d", row)
			if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge category: %w", err)
			}
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(svc.Category))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, categoryStyle)
			lastCategory = svc.Category
			row++
		}

		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(svc.Service))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(svc.ScopeOfWork))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(svc.BillingCycle))
		f.SetCellValue(sheetName, "E"+rowStr, FormatINR(svc.EffectiveFee()))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, serviceStyle)
		row++
	}

	// ── Total ───────────────────────────────────────────────────────────

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+totalRow, fmt.Sprintf("Total (%d):", data.Summary.Count))
	f.SetCellStyle(sheetName, "D"+totalRow, "D"+totalRow, totalLabelStyle)
	f.SetCellValue(sheetName, "E"+totalRow, FormatINR(data.Summary.Total))
	f.SetCellStyle(sheetName, "E"+totalRow, "E"+totalRow, totalValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four cell sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
