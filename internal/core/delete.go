package core

import (
	"context"
	"fmt"

	"github.com/buemura/nessusctl/internal/output"
	"github.com/buemura/nessusctl/internal/query"
	"github.com/buemura/nessusctl/pkg/types"
)

// PolicyDelete shows the projected policies, asks for confirmation, and
// deletes each one sequentially.
func (r *Runner) PolicyDelete(ctx context.Context, opts Options) error {
	return r.deleteFlow(ctx, opts, query.KindPolicies,
		func(ctx context.Context, c SessionClient) (types.Records, error) { return c.Policies(ctx) },
		func(ctx context.Context, c SessionClient, id int) error { return c.DeletePolicy(ctx, id) },
	)
}

// ScanDelete shows the projected scans, asks for confirmation, and deletes
// each one sequentially.
func (r *Runner) ScanDelete(ctx context.Context, opts Options) error {
	return r.deleteFlow(ctx, opts, query.KindScans,
		func(ctx context.Context, c SessionClient) (types.Records, error) { return c.Scans(ctx) },
		func(ctx context.Context, c SessionClient, id int) error { return c.DeleteScan(ctx, id) },
	)
}

// deleteFlow composes normalize -> project -> render for the confirmation
// display, then guards the destructive part: the projection must be
// non-empty and every record must carry an id. A declined confirmation
// deletes nothing.
func (r *Runner) deleteFlow(
	ctx context.Context,
	opts Options,
	kind query.Kind,
	fetch func(context.Context, SessionClient) (types.Records, error),
	del func(context.Context, SessionClient, int) error,
) error {
	projection, err := query.ForKind(kind, opts.Filter)
	if err != nil {
		return err
	}
	formatter, err := output.GetFormatter(opts.Format, opts.SortBy)
	if err != nil {
		return err
	}

	return r.forEachAddress(ctx, opts, func(ctx context.Context, address string, client SessionClient) error {
		records, err := fetch(ctx, client)
		if err != nil {
			return err
		}

		fmt.Fprintln(r.Out, address)
		if len(records) == 0 {
			fmt.Fprintf(r.Out, "%s doesn't have any %s!\n", opts.Username, kind)
			return &EmptyResultError{Kind: kind, Address: address}
		}

		projected, err := projection.Apply(query.Normalize(records))
		if err != nil {
			return err
		}

		selected, ok := query.AsRecords(projected)
		if !ok || len(selected) == 0 {
			fmt.Fprintf(r.Out, "The filter matched no %s; nothing to delete.\n", kind)
			return &EmptyResultError{Kind: kind, Address: address}
		}

		ids := make([]int, 0, len(selected))
		for _, rec := range selected {
			id, err := recordID(rec)
			if err != nil {
				fmt.Fprintln(r.Out, "Every record selected for deletion must carry an id field. Include id in your --filter expression and try again.")
				return &MissingIdentifierError{Kind: kind}
			}
			ids = append(ids, id)
		}

		if err := formatter.Format(r.Out, selected, projection.Columns(selected)); err != nil {
			return err
		}

		if !r.confirm(fmt.Sprintf("Do you want to delete the %d %s above? (yes): ", len(selected), kind)) {
			fmt.Fprintln(r.Out, "Nothing deleted.")
			return nil
		}

		for _, id := range ids {
			fmt.Fprintf(r.Out, "Deleting id %d\n", id)
			if err := del(ctx, client, id); err != nil {
				return err
			}
		}
		return nil
	})
}
