package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/blockfmt/internal/pipeline"
	"github.com/mithrel/blockfmt/internal/present"
	"github.com/mithrel/blockfmt/internal/wire"
)

// addOutputFlags registers the presentation flags shared by every command
// that prints rendered units. Unset flags leave the config value in place.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "output mode: auto|plain|styled|pretty|json|ndjson|yaml|tui")
	cmd.Flags().Int("width", 0, "wrap width for styled/pretty output (0 detects the terminal)")
	cmd.Flags().String("style", "", "glamour style for pretty output")
	cmd.Flags().Bool("json-indent", false, "indent JSON output")
	cmd.Flags().Bool("pager", true, "pipe plain/styled output through $PAGER on a terminal")
	cmd.Flags().StringSlice("keywords", nil, "highlight keywords (comma-separated)")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return present.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func presentOptions(app *wire.App, title string) (present.Options, error) {
	s := app.Settings
	mode, ok := present.ParseMode(s.Mode)
	if !ok {
		return present.Options{}, fmt.Errorf("invalid --mode: %s", s.Mode)
	}
	return present.Options{
		Mode:         mode,
		JSONIndent:   s.JSONIndent,
		Headers:      true,
		Width:        s.Width,
		GlamourStyle: s.GlamourStyle,
		Title:        title,
		Log:          app.Log,
	}, nil
}

// printResponse runs text through the pipeline and presents the units.
func printResponse(cmd *cobra.Command, app *wire.App, title, text string) error {
	doc := pipeline.Process(text, app.Renderer)
	app.Log.Debug("response processed",
		zap.Int("blocks", len(doc.Blocks)),
		zap.Int("units", len(doc.Units)),
		zap.String("fingerprint", doc.Fingerprint()),
	)

	opts, err := presentOptions(app, title)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	mode := present.ResolveMode(opts.Mode, out)
	if mode == present.ModeTUI || !app.Settings.Pager || !pageable(mode) {
		return present.RenderUnits(ctx, out, doc.Units, opts)
	}
	// Width is taken from the terminal before output is redirected into the pager.
	opts.Mode = mode
	opts.Width = present.ResolveWidth(opts.Width, out)
	return withPager(ctx, out, cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderUnits(ctx, w, doc.Units, opts)
	})
}

func pageable(m present.Mode) bool {
	switch m {
	case present.ModePlain, present.ModeStyled, present.ModePretty:
		return true
	default:
		return false
	}
}
