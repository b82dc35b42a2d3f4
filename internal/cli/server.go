package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverStatusFlag  bool
	serverIPsFlag     bool
	serverVersionFlag bool
	serverSessionFlag bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Get scanner server info",
	Long:  "Query server status, license consumption, version, and the current session.",
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().BoolVar(&serverStatusFlag, "status", false, "get server status")
	serverCmd.Flags().BoolVar(&serverIPsFlag, "ips", false, "show licensed, active and remaining IPs")
	serverCmd.Flags().BoolVar(&serverVersionFlag, "version", false, "get server version")
	serverCmd.Flags().BoolVar(&serverSessionFlag, "session", false, "show the current session's user")
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	runner := newRunner()
	opts := options()
	ctx := cmd.Context()

	ran := false
	if serverStatusFlag {
		ran = true
		if err := runner.ServerStatus(ctx, opts); err != nil {
			return err
		}
	}
	if serverIPsFlag {
		ran = true
		if err := runner.ServerIPs(ctx, opts); err != nil {
			return err
		}
	}
	if serverVersionFlag {
		ran = true
		if err := runner.ServerVersion(ctx, opts); err != nil {
			return err
		}
	}
	if serverSessionFlag {
		ran = true
		if err := runner.SessionInfo(ctx, opts); err != nil {
			return err
		}
	}
	if !ran {
		fmt.Fprintln(os.Stderr, "No option given!")
	}
	return nil
}
