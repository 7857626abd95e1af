// Command rollcall extracts officeholder records from saved HTML roster
// pages.
//
//	rollcall parse --state OH --out terms.db pages/governor_oh.html
//	rollcall parse --config pages.yaml
//	rollcall tables pages/governor_oh.html
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/rollcall/internal/config"
	"github.com/tsawler/rollcall/internal/logging"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions are the flags shared by every command
type globalOptions struct {
	configPath string
	debug      bool
	jsonLogs   bool
}

// setup loads the configuration and builds the logger for cmd
func (o *globalOptions) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = o.debug
	}

	logCfg := logging.DefaultConfig()
	if cfg.Debug {
		logCfg = logging.DebugConfig()
	}
	logCfg.JSON = o.jsonLogs
	logger, err := logging.New(logCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "rollcall",
		Short: "Extract officeholder records from HTML roster tables",
		Long: `rollcall reads saved "list of officeholders" pages, finds the roster
table, works out which column holds names, parties and terms, and writes
one normalized record per term of office.

Output goes to stdout as JSON lines unless --out names a .jsonl or .db
file. Settings can also come from a YAML file (--config) or ROLLCALL_*
environment variables; flags win over both.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every table and row decision")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")

	root.AddCommand(parseCmd(opts))
	root.AddCommand(tablesCmd(opts))
	return root
}
