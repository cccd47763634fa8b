package ui

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/thep200/github-explorer/internal/explorer"
)

// RenderStarChart writes the cumulative star series as a standalone echarts
// line page.
func RenderStarChart(w io.Writer, result *explorer.StarHistoryResult) error {
	title := fmt.Sprintf("%s/%s cumulative stars", result.Owner, result.Repo)
	subtitle := ""
	if result.Truncated {
		subtitle = "History incomplete: pagination capped, final point reconciled against the reported total"
	}

	labels := make([]string, len(result.Series))
	data := make([]opts.LineData, len(result.Series))
	for i, p := range result.Series {
		labels[i] = p.Date.Format("2006-01-02")
		data[i] = opts.LineData{Value: p.Stars}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Stars"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("Stars", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
	)

	return line.Render(w)
}
