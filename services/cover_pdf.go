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
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateCoverLetterPDF renders the proposal cover page: the firm name, a
// large title and the "Prepared for" block naming the client.
func GenerateCoverLetterPDF(client ClientInfo, meta ProposalMeta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(FirmName, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
		row.New(70),
		row.New(24).Add(
			col.New(12).Add(
				text.New("Service Proposal", props.Text{
					Size:  32,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 36, Green: 67, Blue: 51},
				}),
			),
		),
		row.New(10),
	)

	preparedFor := meta.PreparedFor
	if preparedFor == "" {
		preparedFor = preparedForDefault(client)
	}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Prepared for", props.Text{
					Size:  11,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(preparedFor, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	if meta.PreparedBy != "" || meta.Date != "" {
		m.AddRows(
			row.New(40),
			row.New(8).Add(
				col.New(6).Add(
					text.New("Prepared by: "+meta.PreparedBy, props.Text{Size: 9, Align: align.Left}),
				),
				col.New(6).Add(
					text.New(meta.Date, props.Text{Size: 9, Align: align.Right}),
				),
			),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate cover letter: %w", err)
	}
	return doc.GetBytes(), nil
}
