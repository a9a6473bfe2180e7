package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "1000px"
	chartHeight = "550px"

	// topHotspotsLimit caps the bars in the hotspot chart; the full record
	// set stays available through the csv/json formats.
	topHotspotsLimit = 25

	xAxisLabelRotate = 60
)

func writeSummaryChart(writer io.Writer, records []SummaryRecord) error {
	labels := make([]string, len(records))
	values := make([]opts.BarData, len(records))

	for i, record := range records {
		labels[i] = record.Statistic
		values[i] = opts.BarData{Value: record.Value}
	}

	bar := newBarChart("Repository Summary", "Aggregate statistics over the analysed history")
	bar.SetXAxis(labels).AddSeries("value", values)

	return renderPage(writer, bar)
}

func writeHotspotChart(writer io.Writer, records []HotspotRecord) error {
	ranked := make([]HotspotRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revisions > ranked[j].Revisions
	})

	if len(ranked) > topHotspotsLimit {
		ranked = ranked[:topHotspotsLimit]
	}

	labels := make([]string, len(ranked))
	values := make([]opts.BarData, len(ranked))

	for i, record := range ranked {
		labels[i] = record.Entry
		values[i] = opts.BarData{Value: record.Revisions}
	}

	bar := newBarChart("Hotspots", "Paths ranked by distinct content revisions across history")
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisLabelRotate, Interval: "0"},
		}),
	)
	bar.SetXAxis(labels).AddSeries("revisions", values)

	return renderPage(writer, bar)
}

func newBarChart(title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	return bar
}

func renderPage(writer io.Writer, charters ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(charters...)

	err := page.Render(writer)
	if err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}

	return nil
}
