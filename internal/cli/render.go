package cli

import (
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render response text as structured output",
		Long: `Render reads response text from a file or stdin, splits it into headers,
tables, lists, bold lines and prose, and prints the result in the selected mode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			title := "blockfmt"
			if len(args) == 1 && args[0] != "-" {
				title = args[0]
			}
			return printResponse(cmd, app, title, text)
		},
	}
	addOutputFlags(cmd)
	return cmd
}
