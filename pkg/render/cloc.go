package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/repostat/pkg/cloc"
)

// ClocRecord is one per-language row of the cloc output.
type ClocRecord struct {
	Language string `json:"language"`
	Files    uint64 `json:"files"`
	Lines    uint64 `json:"lines"`
	Blanks   uint64 `json:"blanks"`
	Code     uint64 `json:"code"`
}

// ClocRecords converts language statistics into the output record set.
func ClocRecords(stats []cloc.LanguageStats) []ClocRecord {
	records := make([]ClocRecord, 0, len(stats))

	for _, s := range stats {
		records = append(records, ClocRecord{
			Language: s.Language,
			Files:    s.Files,
			Lines:    s.Lines,
			Blanks:   s.Blanks,
			Code:     s.Code,
		})
	}

	return records
}

// WriteCloc renders per-language line counts to the writer in the given
// format.
func WriteCloc(writer io.Writer, format string, stats []cloc.LanguageStats) error {
	records := ClocRecords(stats)

	switch format {
	case FormatCSV:
		return writeClocCSV(writer, records)
	case FormatJSON:
		return writeJSON(writer, records)
	case FormatText:
		return writeClocText(writer, records)
	case FormatHTML:
		return writeClocChart(writer, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeClocCSV(writer io.Writer, records []ClocRecord) error {
	csvWriter := csv.NewWriter(writer)

	err := csvWriter.Write([]string{"language", "files", "lines", "blanks", "code"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		err = csvWriter.Write([]string{
			record.Language,
			strconv.FormatUint(record.Files, 10),
			strconv.FormatUint(record.Lines, 10),
			strconv.FormatUint(record.Blanks, 10),
			strconv.FormatUint(record.Code, 10),
		})
		if err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	csvWriter.Flush()

	if flushErr := csvWriter.Error(); flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	return nil
}

func writeClocText(writer io.Writer, records []ClocRecord) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.AppendHeader(table.Row{"Language", "Files", "Lines", "Blanks", "Code"})

	for _, record := range records {
		tw.AppendRow(table.Row{record.Language, record.Files, record.Lines, record.Blanks, record.Code})
	}

	tw.Render()

	return nil
}

func writeClocChart(writer io.Writer, records []ClocRecord) error {
	labels := make([]string, len(records))
	codeValues := make([]opts.BarData, len(records))

	for i, record := range records {
		labels[i] = record.Language
		codeValues[i] = opts.BarData{Value: record.Code}
	}

	bar := newBarChart("Lines of Code", "Code lines per language at the analysed revision")
	bar.SetXAxis(labels).AddSeries("code", codeValues)

	return renderPage(writer, bar)
}
