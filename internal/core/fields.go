package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/buemura/nessusctl/pkg/types"
)

// encodeValue prints a non-tabular projection result as indented JSON.
func encodeValue(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// intField digs a numeric field out of a raw record by key path. The API is
// inconsistent about numbers versus numeric strings, so both are accepted.
func intField(rec types.Record, path ...string) (int, error) {
	var v any = rec
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return 0, fmt.Errorf("field %s not present", strings.Join(path, "."))
		}
		v = m[key]
	}
	return asInt(v, strings.Join(path, "."))
}

// stringField digs a string field out of a raw record.
func stringField(rec types.Record, key string) (string, error) {
	s, ok := rec[key].(string)
	if !ok {
		return "", fmt.Errorf("field %s not present", key)
	}
	return s, nil
}

// recordID extracts the id of a projected record for a delete flow.
func recordID(rec types.Record) (int, error) {
	return asInt(rec["id"], "id")
}

func asInt(v any, name string) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case string:
		return strconv.Atoi(n)
	case nil:
		return 0, fmt.Errorf("field %s not present", name)
	default:
		return 0, fmt.Errorf("field %s is not a number", name)
	}
}
