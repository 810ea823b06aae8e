package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// unavailable stands in for a generator that could not be built, so the
// service answers with its fallback message.
type unavailable struct{ err error }

func (u unavailable) Generate(context.Context, string) (string, error) { return "", u.err }

func newMotivateCmd() *cobra.Command {
	var progress int
	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Print a short motivational message for your learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if progress < 0 || progress > 100 {
				return fmt.Errorf("--progress must be between 0 and 100, got %d", progress)
			}
			app := getApp(cmd)
			gen, err := newGenerator(cmd.Context(), app)
			if err != nil {
				app.Log.Info("generator unavailable", zap.Error(err))
				gen = unavailable{err: err}
			}
			msg := app.AgentService(gen).Motivate(cmd.Context(), progress)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}
	cmd.Flags().IntVarP(&progress, "progress", "p", 0, "learning progress percentage (0-100)")
	cmd.Flags().String("model", "", "generative model override")
	return cmd
}
