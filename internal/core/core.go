// Package core holds the command logic behind every CLI action: credential
// resolution, the API session lifecycle, and the fetch -> normalize ->
// project -> render pipeline. The CLI layer is a thin adapter that parses
// flags into Options and calls one entry point per resource action.
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/buemura/nessusctl/internal/api"
	"github.com/buemura/nessusctl/internal/output"
	"github.com/buemura/nessusctl/internal/query"
	"github.com/buemura/nessusctl/internal/secret"
	"github.com/buemura/nessusctl/pkg/types"
)

// Options is the parsed invocation the CLI hands to each entry point.
type Options struct {
	Addresses []string
	Port      int
	Username  string
	Password  string
	Insecure  bool
	Format    string
	Filter    string
	SortBy    string
	Verbose   int
	Timeout   time.Duration
}

// SessionClient is the slice of the API client the core depends on. Tests
// back it with httptest servers through Runner.NewClient.
type SessionClient interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	ServerStatus(ctx context.Context) (string, error)
	ServerProperties(ctx context.Context) (types.Record, error)
	SessionInfo(ctx context.Context) (types.Record, error)
	Users(ctx context.Context) (types.Records, error)
	Policies(ctx context.Context) (types.Records, error)
	Scans(ctx context.Context) (types.Records, error)
	Folders(ctx context.Context) (types.Records, error)
	PluginFamilies(ctx context.Context) (types.Records, error)
	AdvancedSettings(ctx context.Context) (types.Records, error)
	DeletePolicy(ctx context.Context, id int) error
	DeleteScan(ctx context.Context, id int) error
}

// Runner wires the core's collaborators together.
type Runner struct {
	Resolver  *secret.Resolver
	NewClient func(host string, port int, insecure bool, timeout time.Duration) SessionClient
	Out       io.Writer
	In        *bufio.Reader
}

// forEachAddress processes the target addresses strictly sequentially:
// resolve the password, log in, run fn, log out. A login failure prints a
// targeted message and aborts the run. An empty result is scoped to its
// address: later addresses are still processed and the error surfaces after
// the loop. Logout is attempted on every path past a successful login,
// including when fn fails.
func (r *Runner) forEachAddress(ctx context.Context, opts Options, fn func(ctx context.Context, address string, client SessionClient) error) error {
	var emptyResult error
	for _, address := range opts.Addresses {
		password, err := r.Resolver.Resolve(address, opts.Username, opts.Password)
		if err != nil {
			return err
		}

		client := r.NewClient(address, opts.Port, opts.Insecure, opts.Timeout)
		if err := client.Login(ctx, opts.Username, password); err != nil {
			var connErr *api.ConnectivityError
			var authErr *api.AuthenticationError
			switch {
			case errors.As(err, &connErr):
				fmt.Fprintf(r.Out, "Can't reach the scanner API via %s. Please check your connection.\n", address)
			case errors.As(err, &authErr):
				fmt.Fprintln(r.Out, "Can't login to the scanner API with the supplied credentials. Please make sure they are correct.")
			}
			return err
		}

		runErr := fn(ctx, address, client)
		client.Logout(ctx) // best-effort; the session must not leak even when fn failed
		if runErr != nil {
			var emptyErr *EmptyResultError
			if errors.As(runErr, &emptyErr) {
				emptyResult = runErr
				continue
			}
			return runErr
		}
	}
	return emptyResult
}

// list runs the shared listing pipeline for one resource kind. The
// projection and formatter are resolved before any network traffic so a
// malformed expression or format fails fast.
func (r *Runner) list(ctx context.Context, opts Options, kind query.Kind, fetch func(context.Context, SessionClient) (types.Records, error)) error {
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
		if !ok {
			// Scalar or non-record projection: show the structured value.
			return encodeValue(r.Out, projected)
		}
		return formatter.Format(r.Out, selected, projection.Columns(selected))
	})
}

func (r *Runner) confirm(question string) bool {
	fmt.Fprint(r.Out, question)
	answer, _ := r.In.ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "" || strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
}
