package core

import (
	"fmt"

	"github.com/buemura/nessusctl/internal/query"
)

// EmptyResultError reports a listing that produced no records where at least
// one was expected. It carries exit code 1 but is informational: nothing was
// attempted, nothing was deleted.
type EmptyResultError struct {
	Kind    query.Kind
	Address string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s found on %s", e.Kind, e.Address)
}

// MissingIdentifierError reports a delete projection that dropped the id
// field from one or more records. No deletion is attempted.
type MissingIdentifierError struct {
	Kind query.Kind
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("cannot delete %s: the filter result is missing the id field", e.Kind)
}
