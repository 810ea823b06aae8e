package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/blockfmt/internal/present"
	"github.com/mithrel/blockfmt/internal/segment"
)

func newSegmentCmd() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "segment [file|-]",
		Short: "Print the block sequence detected in response text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := presentOptions(app, "")
			if err != nil {
				return err
			}
			opts.Headers = !noHeaders
			return present.RenderBlocks(cmd.OutOrStdout(), segment.Segment(text), opts)
		},
	}
	cmd.Flags().String("mode", "", "output mode: plain|json|ndjson|yaml")
	cmd.Flags().Bool("json-indent", false, "indent JSON output")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "json", "ndjson", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
