package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/repostat/pkg/history"
)

// Summary statistic names, kept stable for downstream consumers.
const (
	StatCommits        = "number-of-commits"
	StatAuthors        = "number-of-authors"
	StatEntries        = "number-of-entries"
	StatEntriesChanged = "number-of-entries-changed"
)

// SummaryRecord is one (statistic name, value) pair of the summary output.
type SummaryRecord struct {
	Statistic string `json:"statistics"`
	Value     uint64 `json:"value"`
}

// SummaryRecords converts summary statistics into the output record set.
func SummaryRecords(stats history.SummaryStats) []SummaryRecord {
	return []SummaryRecord{
		{Statistic: StatCommits, Value: stats.Commits},
		{Statistic: StatAuthors, Value: stats.Authors},
		{Statistic: StatEntries, Value: stats.Entries},
		{Statistic: StatEntriesChanged, Value: stats.EntriesChanged},
	}
}

// WriteSummary renders summary statistics to the writer in the given format.
func WriteSummary(writer io.Writer, format string, stats history.SummaryStats) error {
	records := SummaryRecords(stats)

	switch format {
	case FormatCSV:
		return writeSummaryCSV(writer, records)
	case FormatJSON:
		return writeJSON(writer, records)
	case FormatText:
		return writeSummaryText(writer, records)
	case FormatHTML:
		return writeSummaryChart(writer, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeSummaryCSV(writer io.Writer, records []SummaryRecord) error {
	csvWriter := csv.NewWriter(writer)

	err := csvWriter.Write([]string{"statistics", "value"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		err = csvWriter.Write([]string{record.Statistic, strconv.FormatUint(record.Value, 10)})
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

func writeSummaryText(writer io.Writer, records []SummaryRecord) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.AppendHeader(table.Row{"Statistic", "Value"})

	for _, record := range records {
		tw.AppendRow(table.Row{record.Statistic, record.Value})
	}

	tw.Render()

	return nil
}

// writeJSON pretty-prints any record slice, matching the structured output
// form consumed by downstream tooling.
func writeJSON(writer io.Writer, records any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(records)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
