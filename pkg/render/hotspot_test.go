package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repostat/pkg/history"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
)

func samplePaths() []history.PathRevisions {
	return []history.PathRevisions{
		{Path: "README.md", Revisions: 1},
		{Path: "cmd/main.go", Revisions: 7},
		{Path: "pkg/core.go", Revisions: 4},
	}
}

func TestHotspotRecordsPreserveOrder(t *testing.T) {
	t.Parallel()

	records := render.HotspotRecords(samplePaths())

	require.Len(t, records, 3)
	assert.Equal(t, render.HotspotRecord{Entry: "README.md", Revisions: 1}, records[0])
	assert.Equal(t, render.HotspotRecord{Entry: "cmd/main.go", Revisions: 7}, records[1])
	assert.Equal(t, render.HotspotRecord{Entry: "pkg/core.go", Revisions: 4}, records[2])
}

func TestWriteHotspotCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.WriteHotspot(&buf, render.FormatCSV, samplePaths())
	require.NoError(t, err)

	expected := "entry,n-revs\n" +
		"README.md,1\n" +
		"cmd/main.go,7\n" +
		"pkg/core.go,4\n"

	assert.Equal(t, expected, buf.String())
}

func TestWriteHotspotJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.WriteHotspot(&buf, render.FormatJSON, samplePaths())
	require.NoError(t, err)

	var records []map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 3)

	assert.Equal(t, "cmd/main.go", records[1]["entry"])
	assert.InDelta(t, 7, records[1]["n-revs"], 0)
}

func TestWriteHotspotText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.WriteHotspot(&buf, render.FormatText, samplePaths())
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "cmd/main.go")
	assert.Contains(t, out, "7")
}

func TestWriteHotspotHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.WriteHotspot(&buf, render.FormatHTML, samplePaths())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "cmd/main.go")
}

func TestWriteHotspotEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.WriteHotspot(&buf, render.FormatCSV, nil)
	require.NoError(t, err)

	// Header only; no records means no rows.
	assert.Equal(t, "entry,n-revs\n", buf.String())
}

func TestWriteHotspotUnknownFormat(t *testing.T) {
	t.Parallel()

	err := render.WriteHotspot(&bytes.Buffer{}, "toml", samplePaths())

	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
