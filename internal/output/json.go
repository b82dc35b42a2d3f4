package output

import (
	"encoding/json"
	"io"

	"github.com/buemura/nessusctl/pkg/types"
)

// JSONFormatter renders records as indented JSON. Columns are ignored: the
// structured form carries its own keys.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, records types.Records, columns []string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
