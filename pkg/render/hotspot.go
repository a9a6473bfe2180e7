package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/repostat/pkg/history"
)

// HotspotRecord is one (path, revision count) pair of the hotspot output.
type HotspotRecord struct {
	Entry     string `json:"entry"`
	Revisions uint64 `json:"n-revs"`
}

// HotspotRecords converts path revision counts into the output record set,
// preserving the engine's path-ascending order.
func HotspotRecords(paths []history.PathRevisions) []HotspotRecord {
	records := make([]HotspotRecord, 0, len(paths))

	for _, p := range paths {
		records = append(records, HotspotRecord{Entry: p.Path, Revisions: p.Revisions})
	}

	return records
}

// WriteHotspot renders per-path revision counts to the writer in the given
// format.
func WriteHotspot(writer io.Writer, format string, paths []history.PathRevisions) error {
	records := HotspotRecords(paths)

	switch format {
	case FormatCSV:
		return writeHotspotCSV(writer, records)
	case FormatJSON:
		return writeJSON(writer, records)
	case FormatText:
		return writeHotspotText(writer, records)
	case FormatHTML:
		return writeHotspotChart(writer, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeHotspotCSV(writer io.Writer, records []HotspotRecord) error {
	csvWriter := csv.NewWriter(writer)

	err := csvWriter.Write([]string{"entry", "n-revs"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		err = csvWriter.Write([]string{record.Entry, strconv.FormatUint(record.Revisions, 10)})
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

func writeHotspotText(writer io.Writer, records []HotspotRecord) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.AppendHeader(table.Row{"Entry", "Revisions"})

	for _, record := range records {
		tw.AppendRow(table.Row{record.Entry, record.Revisions})
	}

	tw.Render()

	return nil
}
