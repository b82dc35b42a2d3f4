package query

import (
	"fmt"
	"sort"

	"github.com/jmespath/go-jmespath"

	"github.com/buemura/nessusctl/pkg/types"
)

// Kind names a listable resource. The string form doubles as the plural
// noun in operator-facing messages.
type Kind string

const (
	KindUsers    Kind = "users"
	KindPolicies Kind = "policies"
	KindScans    Kind = "scans"
	KindFamilies Kind = "plugin families"
	KindSettings Kind = "settings"
	KindFolders  Kind = "folders"
)

// defaults holds the built-in projection per resource kind plus the column
// order it renders with. Every deletable kind keeps id in its default so the
// delete flow works without a user-supplied filter.
var defaults = map[Kind]struct {
	expr    string
	columns []string
}{
	KindUsers: {
		"[].{id: id, username: username, name: name, lastlogin: lastlogin}",
		[]string{"id", "username", "name", "lastlogin"},
	},
	KindPolicies: {
		"[].{id: id, name: name, owner: owner, creation_date: creation_date, last_modification_date: last_modification_date}",
		[]string{"id", "name", "owner", "creation_date", "last_modification_date"},
	},
	KindScans: {
		"[].{id: id, name: name, owner: owner, status: status, folder_id: folder_id, creation_date: creation_date, last_modification_date: last_modification_date}",
		[]string{"id", "name", "owner", "status", "folder_id", "creation_date", "last_modification_date"},
	},
	KindFamilies: {
		"[].{id: id, name: name, count: count}",
		[]string{"id", "name", "count"},
	},
	KindSettings: {
		"[].{id: id, name: name, value: value}",
		[]string{"id", "name", "value"},
	},
	KindFolders: {
		"[].{id: id, name: name, type: type}",
		[]string{"id", "name", "type"},
	},
}

// ExpressionError reports a malformed query expression. Compilation happens
// before any network traffic, so a typo never costs a login.
type ExpressionError struct {
	Expr string
	Err  error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("invalid filter expression %q: %v", e.Expr, e.Err)
}

func (e *ExpressionError) Unwrap() error { return e.Err }

// Projection is a compiled query expression plus the column order its
// results render with. Compilation is independent of the data.
type Projection struct {
	expr     string
	compiled *jmespath.JMESPath
	columns  []string // nil: derive from the projected data
}

// Compile builds a projection from a user-supplied JMESPath expression.
func Compile(expr string) (*Projection, error) {
	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return nil, &ExpressionError{Expr: expr, Err: err}
	}
	return &Projection{expr: expr, compiled: compiled}, nil
}

// Default returns the built-in projection for kind.
func Default(kind Kind) *Projection {
	d := defaults[kind]
	return &Projection{
		expr:     d.expr,
		compiled: jmespath.MustCompile(d.expr),
		columns:  d.columns,
	}
}

// ForKind returns the built-in projection for kind unless expr is non-empty,
// in which case the user expression replaces it entirely (no merge).
func ForKind(kind Kind, expr string) (*Projection, error) {
	if expr == "" {
		return Default(kind), nil
	}
	return Compile(expr)
}

// Apply evaluates the projection against records. The result is usually a
// record list but may be a scalar or nil when the expression narrows to one
// field or matches nothing; neither is an error.
func (p *Projection) Apply(records types.Records) (any, error) {
	data := make([]any, len(records))
	for i, rec := range records {
		data[i] = rec
	}
	result, err := p.compiled.Search(data)
	if err != nil {
		return nil, &ExpressionError{Expr: p.expr, Err: err}
	}
	return result, nil
}

// Columns returns the display column order: the built-in order for default
// projections, otherwise the union of field names across records, sorted.
func (p *Projection) Columns(records types.Records) []string {
	if p.columns != nil {
		return p.columns
	}
	seen := make(map[string]bool)
	var columns []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// AsRecords coerces a projection result into a record list. ok is false when
// the result is a scalar, nil, or a list of non-objects.
func AsRecords(v any) (records types.Records, ok bool) {
	list, isList := v.([]any)
	if !isList {
		return nil, false
	}
	records = make(types.Records, 0, len(list))
	for _, item := range list {
		rec, isRec := item.(map[string]any)
		if !isRec {
			return nil, false
		}
		records = append(records, rec)
	}
	return records, true
}
