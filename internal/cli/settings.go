package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var settingsListFlag bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Get advanced settings",
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsListFlag, "list", false, "get advanced settings list")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	if !settingsListFlag {
		fmt.Fprintln(os.Stderr, "No option given!")
		return nil
	}
	return newRunner().SettingList(cmd.Context(), options())
}
