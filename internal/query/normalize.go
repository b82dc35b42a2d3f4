// Package query reshapes raw API records for display: timestamp
// normalization followed by a JMESPath projection.
package query

import (
	"encoding/json"
	"time"

	"github.com/buemura/nessusctl/pkg/types"
)

// timestampFields are the record fields the API reports as epoch seconds.
var timestampFields = []string{"creation_date", "last_modification_date", "lastlogin"}

// TimeLayout is the display form timestamps normalize to.
const TimeLayout = "2006-01-02 15:04:05"

// Normalize returns a copy of records with epoch-second timestamp fields
// rewritten as local-time strings. It runs before projection so filter
// expressions can match the string form. Idempotent: already-formatted
// strings pass through untouched. A present-but-null value (a user who never
// logged in) becomes the epoch-zero string; absent fields stay absent.
func Normalize(records types.Records) types.Records {
	out := make(types.Records, 0, len(records))
	for _, rec := range records {
		clone := make(types.Record, len(rec))
		for k, v := range rec {
			clone[k] = v
		}
		for _, field := range timestampFields {
			v, ok := clone[field]
			if !ok {
				continue
			}
			clone[field] = formatEpoch(v)
		}
		out = append(out, clone)
	}
	return out
}

func formatEpoch(v any) any {
	switch n := v.(type) {
	case nil:
		return time.Unix(0, 0).Format(TimeLayout)
	case float64:
		return time.Unix(int64(n), 0).Format(TimeLayout)
	case int:
		return time.Unix(int64(n), 0).Format(TimeLayout)
	case int64:
		return time.Unix(n, 0).Format(TimeLayout)
	case json.Number:
		sec, err := n.Int64()
		if err != nil {
			return v
		}
		return time.Unix(sec, 0).Format(TimeLayout)
	default:
		// Strings and anything else are already display-ready.
		return v
	}
}
