package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	policyListFlag   bool
	policyDeleteFlag bool
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Get or delete scan policies",
	RunE:  runPolicy,
}

func init() {
	policyCmd.Flags().BoolVar(&policyListFlag, "list", false, "get scan policies list")
	policyCmd.Flags().BoolVar(&policyDeleteFlag, "delete", false, "delete the policies matched by the filter, after confirmation")
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, args []string) error {
	switch {
	case policyDeleteFlag:
		return newRunner().PolicyDelete(cmd.Context(), options())
	case policyListFlag:
		return newRunner().PolicyList(cmd.Context(), options())
	default:
		fmt.Fprintln(os.Stderr, "No option given!")
		return nil
	}
}
