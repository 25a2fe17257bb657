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

const engagementIntro = "We thank you for the opportunity to provide our professional " +
	"services. This letter confirms our understanding of the terms of our engagement " +
	"and the nature of the services we will provide, as set out below."

// GenerateEngagementLetterPDF renders the engagement letter: salutation,
// intro, per-service scope of work, the fee schedule and the engagement
// terms.
func GenerateEngagementLetterPDF(data ProposalResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(18).
		WithTopMargin(15).
		WithRightMargin(18).
		Build()

	m := maroto.New(cfg)

	addLetterHeading(m, data)
	addScopeOfWork(m, data.Services)
	addFeeSchedule(m, data)
	addEngagementTerms(m, data.Proposal)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate engagement letter: %w", err)
	}
	return doc.GetBytes(), nil
}

func addLetterHeading(m core.Maroto, data ProposalResponse) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(FirmName, props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Engagement Letter", props.Text{
					Size:  10,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	addressee := data.Proposal.PreparedFor
	if data.Client.Address != "" {
		addressee += "\n" + data.Client.Address
	}
	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New("To,\n"+addressee, props.Text{Size: 9, Align: align.Left}),
			),
			col.New(4).Add(
				text.New(data.Proposal.Date, props.Text{Size: 9, Align: align.Right}),
			),
		),
	)

	intro := engagementIntro
	if data.Proposal.Message != "" {
		intro = data.Proposal.Message
	}
	m.AddRows(
		row.New(18).Add(
			col.New(12).Add(
				text.New("Dear Sir/Madam,\n\n"+intro, props.Text{Size: 9, Align: align.Left}),
			),
		),
		row.New(4),
	)
}

func addScopeOfWork(m core.Maroto, services []ProposalService) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Scope of Services", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	for i, svc := range services {
		height := 8.0
		body := svc.Service
		if svc.ScopeOfWork != "" {
			body += ": " + svc.ScopeOfWork
			height = 14
		}
		m.AddRows(
			row.New(height).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("%d. %s", i+1, body), props.Text{Size: 9, Align: align.Left}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addFeeSchedule(m core.Maroto, data ProposalResponse) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Professional Fees", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	headerBg := &props.Cell{BackgroundColor: &props.Color{Red: 230, Green: 230, Blue: 230}}
	headerText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	headerRight := headerText
	headerRight.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(7).Add(text.New("Service", headerText)).WithStyle(headerBg),
			col.New(2).Add(text.New("Billing", headerText)).WithStyle(headerBg),
			col.New(3).Add(text.New("Fee", headerRight)).WithStyle(headerBg),
		),
	)

	for _, svc := range data.Services {
		m.AddRows(
			row.New(6).Add(
				col.New(7).Add(text.New(svc.Service, props.Text{Size: 8, Align: align.Left})),
				col.New(2).Add(text.New(svc.BillingCycle, props.Text{Size: 8, Align: align.Left})),
				col.New(3).Add(text.New(FormatINR(svc.EffectiveFee()), props.Text{Size: 8, Align: align.Right})),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
			col.New(3).Add(text.New(FormatINR(data.Summary.Total), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(4),
	)
}

func addEngagementTerms(m core.Maroto, meta ProposalMeta) {
	if meta.Terms != "" {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("Terms of Engagement", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
				),
			),
			row.New(24).Add(
				col.New(12).Add(
					text.New(meta.Terms, props.Text{Size: 8, Align: align.Left}),
				),
			),
		)
	}

	signedBy := meta.PreparedBy
	if signedBy == "" {
		signedBy = FirmName
	}
	m.AddRows(
		row.New(20).Add(
			col.New(12).Add(
				text.New("Yours faithfully,\n\n\nFor "+signedBy, props.Text{Size: 9, Align: align.Left}),
			),
		),
	)
}
