package output

import (
	"encoding/csv"
	"io"

	"github.com/buemura/nessusctl/pkg/types"
)

// CSVFormatter renders records as comma-separated text with a header row and
// no index column.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(w io.Writer, records types.Records, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, cellString(rec[col]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
