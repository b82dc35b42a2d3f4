// Package output renders projected record collections as a table, CSV, or
// JSON. Formatting never mutates the records.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/buemura/nessusctl/pkg/types"
)

// Formatter renders a record collection with the given column order.
type Formatter interface {
	Format(w io.Writer, records types.Records, columns []string) error
}

// GetFormatter returns the formatter for the given format string. sortBy
// only affects the table target.
func GetFormatter(format, sortBy string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{SortBy: sortBy}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, csv)", format)
	}
}

// cellString renders one field value for a table or CSV cell. Integral JSON
// numbers print without the decimal point.
func cellString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
