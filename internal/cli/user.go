package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var userListFlag bool

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Get scanner user info",
	RunE:  runUser,
}

func init() {
	userCmd.Flags().BoolVar(&userListFlag, "list", false, "get users list")
	rootCmd.AddCommand(userCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	if !userListFlag {
		fmt.Fprintln(os.Stderr, "No option given!")
		return nil
	}
	return newRunner().UserList(cmd.Context(), options())
}
