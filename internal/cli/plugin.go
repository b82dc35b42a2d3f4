package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pluginFamilyListFlag bool

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Get plugin info",
	RunE:  runPlugin,
}

func init() {
	pluginCmd.Flags().BoolVar(&pluginFamilyListFlag, "family-list", false, "get plugin families list")
	rootCmd.AddCommand(pluginCmd)
}

func runPlugin(cmd *cobra.Command, args []string) error {
	if !pluginFamilyListFlag {
		fmt.Fprintln(os.Stderr, "No option given!")
		return nil
	}
	return newRunner().PluginFamilyList(cmd.Context(), options())
}
