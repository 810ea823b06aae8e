package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mithrel/blockfmt/internal/agent"
)

func newAgentsCmd() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the mentor agents available to ask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if !noHeaders {
				_, _ = fmt.Fprintln(tw, "NAME\tTITLE\tDESCRIPTION")
			}
			for _, a := range agent.Agents() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Title, a.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers")
	return cmd
}
