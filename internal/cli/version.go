package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of nessusctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nessusctl version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
