package core

import (
	"context"
	"fmt"
)

// ServerStatus prints the scanner's run status for each address.
func (r *Runner) ServerStatus(ctx context.Context, opts Options) error {
	return r.forEachAddress(ctx, opts, func(ctx context.Context, address string, client SessionClient) error {
		status, err := client.ServerStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, status)
		return nil
	})
}

// ServerIPs prints the license consumption line for each address:
// licensed - active = left, with the remaining percentage.
func (r *Runner) ServerIPs(ctx context.Context, opts Options) error {
	return r.forEachAddress(ctx, opts, func(ctx context.Context, address string, client SessionClient) error {
		props, err := client.ServerProperties(ctx)
		if err != nil {
			return err
		}

		licensed, err := intField(props, "license", "ips")
		if err != nil {
			return err
		}
		active, err := intField(props, "used_ip_count")
		if err != nil {
			return err
		}

		left := licensed - active
		percentage := 0
		if licensed > 0 {
			percentage = int(100 - 100*float64(active)/float64(licensed))
		}
		fmt.Fprintf(r.Out, "%s %d - %d = %d (%d%%) remaining IPs\n", address, licensed, active, left, percentage)
		return nil
	})
}

// ServerVersion prints the scanner's version string for each address.
func (r *Runner) ServerVersion(ctx context.Context, opts Options) error {
	return r.forEachAddress(ctx, opts, func(ctx context.Context, address string, client SessionClient) error {
		props, err := client.ServerProperties(ctx)
		if err != nil {
			return err
		}
		version, err := stringField(props, "server_version")
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, version)
		return nil
	})
}

// SessionInfo prints the record describing the current session's user.
func (r *Runner) SessionInfo(ctx context.Context, opts Options) error {
	return r.forEachAddress(ctx, opts, func(ctx context.Context, address string, client SessionClient) error {
		info, err := client.SessionInfo(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, address)
		return encodeValue(r.Out, info)
	})
}
