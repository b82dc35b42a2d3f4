package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	scanListFlag       bool
	scanDeleteFlag     bool
	scanFolderListFlag bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Get or delete scans",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanListFlag, "list", false, "get scans list")
	scanCmd.Flags().BoolVar(&scanDeleteFlag, "delete", false, "delete the scans matched by the filter, after confirmation")
	scanCmd.Flags().BoolVar(&scanFolderListFlag, "folder-list", false, "get scan folders list")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	switch {
	case scanDeleteFlag:
		return newRunner().ScanDelete(cmd.Context(), options())
	case scanListFlag:
		return newRunner().ScanList(cmd.Context(), options())
	case scanFolderListFlag:
		return newRunner().FolderList(cmd.Context(), options())
	default:
		fmt.Fprintln(os.Stderr, "No option given!")
		return nil
	}
}
