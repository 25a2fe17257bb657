package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// FirmName appears on every generated document header.
const FirmName = "Mayur & Company Chartered Accountants"

// GenerateServicesSheetPDF renders the services sheet: the selected services
// grouped under their categories with per-line fees and the proposal total.
func GenerateServicesSheetPDF(data ProposalResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addSheetHeader(m, data)
	addSheetTableHeader(m)

	lastCategory := ""
	for i, svc := range data.Services {
		if svc.Category != lastCategory {
			addCategoryRow(m, svc.Category)
			lastCategory = svc.Category
		}
		addServiceRow(m, i+1, svc)
	}

	addSheetTotal(m, data.Summary)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate services sheet: %w", err)
	}
	return doc.GetBytes(), nil
}

func addSheetHeader(m core.Maroto, data ProposalResponse) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(FirmName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Service Proposal", props.Text{
					Size:  11,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Prepared for: %s", data.Proposal.PreparedFor), props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Proposal.Date), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
	)

	if data.Proposal.PreparedBy != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Prepared by: %s", data.Proposal.PreparedBy), props.Text{
						Size:  9,
						Align: align.Left,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addSheetTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 36, Green: 67, Blue: 51}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	headerRight := headerText
	headerRight.Align = align.Right
	headerCenter := headerText
	headerCenter.Align = align.Center

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerCenter)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Service", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Billing Cycle", headerCenter)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Professional Fee", headerRight)).WithStyle(&headerCell),
		),
	)
}

func addCategoryRow(m core.Maroto, category string) {
	bg := &props.Color{Red: 240, Green: 240, Blue: 240}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(category, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			).WithStyle(&props.Cell{BackgroundColor: bg}),
		),
	)
}

func addServiceRow(m core.Maroto, index int, svc ProposalService) {
	base := props.Text{Size: 8, Align: align.Left}
	center := base
	center.Align = align.Center
	right := base
	right.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", index), center)),
			col.New(6).Add(text.New(svc.Service, base)),
			col.New(2).Add(text.New(svc.BillingCycle, center)),
			col.New(3).Add(text.New(FormatINR(svc.EffectiveFee()), right)),
		),
	)

	// Show the undiscounted fee when an override lowered or raised it.
	if svc.DiscountedPrice != nil && *svc.DiscountedPrice != svc.Price {
		m.AddRows(
			row.New(4).Add(
				col.New(9),
				col.New(3).Add(
					text.New(fmt.Sprintf("(standard fee %s)", FormatINR(svc.Price)), props.Text{
						Size:  6,
						Align: align.Right,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					}),
				),
			),
		)
	}
}

func addSheetTotal(m core.Maroto, summary ProposalSummary) {
	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := &props.Cell{BackgroundColor: totalBg}
	style := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(
				text.New(fmt.Sprintf("Total (%d services)", summary.Count), style),
			).WithStyle(totalCell),
			col.New(3).Add(
				text.New(FormatINR(summary.Total), style),
			).WithStyle(totalCell),
		),
	)
}
