package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/blockfmt/internal/config"
	"github.com/mithrel/blockfmt/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// flagKeys maps command flags to the config keys they override.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"mode":        "output.mode",
	"width":       "output.width",
	"style":       "output.glamour_style",
	"json-indent": "output.json_indent",
	"pager":       "output.pager",
	"keywords":    "highlight.keywords",
	"model":       "agent.model",
	"addr":        "server.addr",
}

// Execute is the entrypoint: it builds the root cobra.Command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "blockfmt",
		Short:         "blockfmt turns LLM response text into structured terminal output",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, flagKeys)
			if err := config.CheckConfigValidity(v); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, app))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, ok := cmd.Context().Value(appKey).(*wire.App); ok {
				_ = app.Log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newSegmentCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newMotivateCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
