package output

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/buemura/nessusctl/pkg/types"
)

// TableFormatter renders records as a boxed, aligned terminal table with a
// leading 1-indexed column. An empty collection still renders a valid
// header-only table.
type TableFormatter struct {
	SortBy string
}

func (f *TableFormatter) Format(w io.Writer, records types.Records, columns []string) error {
	rows := records
	if f.SortBy != "" {
		rows = append(types.Records(nil), records...)
		sort.SliceStable(rows, func(i, j int) bool {
			return cellString(rows[i][f.SortBy]) < cellString(rows[j][f.SortBy])
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"#"}, columns...))
	table.SetAutoWrapText(false)

	for i, rec := range rows {
		row := make([]string, 0, len(columns)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, col := range columns {
			row = append(row, cellString(rec[col]))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
