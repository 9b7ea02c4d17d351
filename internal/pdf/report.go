package pdf

import (
	"fmt"
	"time"

	"backoffice-api/internal/entity"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Render lays out the profitability report as a single table followed by the
// summary and returns the PDF bytes.
func (g *ReportGenerator) Render(report *entity.Report, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(10,
		col.New(8).Add(
			text.New("Profitability Report", props.Text{
				Size:  16,
				Style: fontstyle.Bold,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("January 2, 2006"), props.Text{
				Size:  9,
				Align: align.Right,
			}),
		),
	)

	m.AddRow(10)

	m.AddRow(8,
		headerCol(3, "Service", align.Left),
		headerCol(3, "Client", align.Left),
		headerCol(2, "Revenue", align.Right),
		headerCol(1, "Costs", align.Right),
		headerCol(2, "Profit", align.Right),
		headerCol(1, "Margin", align.Right),
	)

	for _, row := range report.Rows {
		m.AddRow(6,
			cell(3, row.Title, align.Left),
			cell(3, row.ClientName, align.Left),
			cell(2, money(row.Revenue), align.Right),
			cell(1, money(row.Costs), align.Right),
			cell(2, money(row.Profit), align.Right),
			cell(1, fmt.Sprintf("%.1f%%", row.ProfitMargin), align.Right),
		)
	}

	m.AddRow(10)

	summary := report.Summary
	if !summary.HasData() {
		m.AddRow(8,
			col.New(12).Add(
				text.New("No data", props.Text{
					Size:  11,
					Style: fontstyle.Italic,
				}),
			),
		)
	} else {
		summaryRow(m, "Most profitable", fmt.Sprintf("%s (%s)", summary.MostProfitable.Title, money(summary.MostProfitable.Profit)))
		summaryRow(m, "Least profitable", fmt.Sprintf("%s (%s)", summary.LeastProfitable.Title, money(summary.LeastProfitable.Profit)))
	}
	summaryRow(m, "Total profit", money(summary.TotalProfit))
	summaryRow(m, "Completed services", fmt.Sprintf("%d of %d", summary.CompletedCount, summary.ServiceCount))

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF document: %w", err)
	}

	return document.GetBytes(), nil
}

func headerCol(size int, label string, a align.Type) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: a,
		}),
	)
}

func cell(size int, value string, a align.Type) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{
			Size:  8,
			Align: a,
		}),
	)
}

func summaryRow(m core.Maroto, label, value string) {
	m.AddRow(6,
		col.New(4).Add(
			text.New(label+":", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
			}),
		),
		col.New(8).Add(
			text.New(value, props.Text{
				Size: 9,
			}),
		),
	)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
