package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/buemura/nessusctl/internal/api"
	"github.com/buemura/nessusctl/internal/config"
	"github.com/buemura/nessusctl/internal/core"
	"github.com/buemura/nessusctl/internal/secret"
)

var version = "dev"

var (
	addressFlag  []string
	portFlag     int
	usernameFlag string
	passwordFlag string
	insecureFlag bool
	formatFlag   string
	filterFlag   string
	sortByFlag   string
	verboseFlag  int
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

// stdin is shared by every interactive read so buffered bytes are never lost
// between the credential resolver and the delete confirmations.
var stdin = bufio.NewReader(os.Stdin)

var rootCmd = &cobra.Command{
	Use:   "nessusctl",
	Short: "Manage a Nessus scanner from the command line",
	Long: `nessusctl talks to the Nessus management REST API: server status and
license info, users, scan policies, scans, plugin families, and advanced
settings, rendered as a table, JSON, or CSV and optionally filtered with a
JMESPath expression.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so every command picks
		// up config-file and env-var defaults transparently.
		portFlag = cfg.DefaultPort
		if cfg.DefaultUsername != "" {
			usernameFlag = cfg.DefaultUsername
		}
		formatFlag = cfg.OutputFormat
		insecureFlag = cfg.Insecure

		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&addressFlag, "address", "a", []string{"127.0.0.1"}, "scanner address (repeatable)")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 443, "scanner API port")
	rootCmd.PersistentFlags().StringVarP(&usernameFlag, "username", "u", defaultUsername(), "login username")
	rootCmd.PersistentFlags().StringVarP(&passwordFlag, "password", "p", "", "login password (falls back to the OS credential manager, then a prompt)")
	rootCmd.PersistentFlags().BoolVarP(&insecureFlag, "insecure", "k", false, "perform insecure SSL connections and transfers")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json, csv")
	rootCmd.PersistentFlags().StringVar(&filterFlag, "filter", "", "JMESPath expression overriding the default projection")
	rootCmd.PersistentFlags().StringVar(&sortByFlag, "sort-by", "", "sort table output by this field")
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "verbose output (repeatable)")
}

// defaultUsername is the lowercased OS user, with any DOMAIN\ prefix stripped.
func defaultUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	name := u.Username
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// newRunner wires the core with production collaborators.
func newRunner() *core.Runner {
	var store secret.Store = secret.KeyringStore{}
	if appConfig != nil && !appConfig.SecretStore {
		store = &secret.MemStore{}
	}
	return &core.Runner{
		Resolver: &secret.Resolver{
			Store:   store,
			Prompt:  secret.TerminalPrompt,
			In:      stdin,
			Out:     os.Stdout,
			Verbose: verboseFlag > 0,
		},
		NewClient: func(host string, port int, insecure bool, timeout time.Duration) core.SessionClient {
			return api.New(host, port, insecure, timeout)
		},
		Out: os.Stdout,
		In:  stdin,
	}
}

// options collects the parsed flags into the core's option value.
func options() core.Options {
	timeout := 30 * time.Second
	if appConfig != nil && appConfig.Timeout > 0 {
		timeout = appConfig.Timeout
	}
	return core.Options{
		Addresses: addressFlag,
		Port:      portFlag,
		Username:  usernameFlag,
		Password:  passwordFlag,
		Insecure:  insecureFlag,
		Format:    formatFlag,
		Filter:    filterFlag,
		SortBy:    sortByFlag,
		Verbose:   verboseFlag,
		Timeout:   timeout,
	}
}
