package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buemura/nessusctl/pkg/types"
)

var sampleColumns = []string{"id", "name", "owner"}

func sampleRecords() types.Records {
	return types.Records{
		{"id": float64(2), "name": "weekly", "owner": "bob"},
		{"id": float64(1), "name": "adhoc", "owner": "alice"},
	}
}

func TestGetFormatter(t *testing.T) {
	f, err := GetFormatter("table", "")
	require.NoError(t, err)
	assert.IsType(t, &TableFormatter{}, f)

	f, err = GetFormatter("csv", "")
	require.NoError(t, err)
	assert.IsType(t, &CSVFormatter{}, f)

	f, err = GetFormatter("json", "")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("xml", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	err := f.Format(&buf, sampleRecords(), sampleColumns)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "weekly")
	assert.Contains(t, out, "alice")

	// Rows are 1-indexed in input order.
	weeklyLine := lineContaining(t, out, "weekly")
	adhocLine := lineContaining(t, out, "adhoc")
	assert.Contains(t, weeklyLine, "1")
	assert.Contains(t, adhocLine, "2")
}

func TestTableFormatter_SortBy(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{SortBy: "name"}
	err := f.Format(&buf, sampleRecords(), sampleColumns)
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "adhoc"), strings.Index(out, "weekly"))

	// The index column is assigned after sorting.
	adhocLine := lineContaining(t, out, "adhoc")
	assert.Contains(t, adhocLine, "1")
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	err := f.Format(&buf, nil, sampleColumns)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "NAME")
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &CSVFormatter{}
	err := f.Format(&buf, sampleRecords(), sampleColumns)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, sampleColumns, rows[0])
	assert.Equal(t, []string{"2", "weekly", "bob"}, rows[1])
	assert.Equal(t, []string{"1", "adhoc", "alice"}, rows[2])
}

func TestCSVFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := &CSVFormatter{}
	err := f.Format(&buf, nil, sampleColumns)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	err := f.Format(&buf, sampleRecords(), sampleColumns)
	require.NoError(t, err)

	var decoded types.Records
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "weekly", decoded[0]["name"])
}

// Table and CSV must carry the same cell values per row; only the framing
// differs.
func TestTableAndCSVContentParity(t *testing.T) {
	var tableBuf, csvBuf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&tableBuf, sampleRecords(), sampleColumns))
	require.NoError(t, (&CSVFormatter{}).Format(&csvBuf, sampleRecords(), sampleColumns))

	rows, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)

	table := tableBuf.String()
	for _, row := range rows[1:] {
		for _, cell := range row {
			assert.Contains(t, table, cell)
		}
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "plain", cellString("plain"))
	assert.Equal(t, "5", cellString(float64(5)))
	assert.Equal(t, "5.5", cellString(5.5))
	assert.Equal(t, "true", cellString(true))
	assert.Equal(t, `{"a":1}`, cellString(map[string]any{"a": 1}))
}

func lineContaining(t *testing.T, out, substr string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line containing %q in output:\n%s", substr, out)
	return ""
}
