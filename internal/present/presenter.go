// Package present writes rendered units and raw blocks in the selected
// output mode.
package present

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mithrel/blockfmt/internal/present/format"
	"github.com/mithrel/blockfmt/internal/present/tui"
	"github.com/mithrel/blockfmt/pkg/api"
)

type Mode int

const (
	ModeAuto Mode = iota
	ModePlain
	ModeStyled
	ModePretty
	ModeJSON
	ModeNDJSON
	ModeYAML
	ModeTUI
)

var modeNames = []string{"auto", "plain", "styled", "pretty", "json", "ndjson", "yaml", "tui"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ModeNames lists the accepted --mode values.
func ModeNames() []string { return append([]string(nil), modeNames...) }

// ParseMode parses a string like "plain", "styled", "json" or "tui".
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeAuto, false
}

const fallbackWidth = 80

type Options struct {
	Mode         Mode
	JSONIndent   bool
	Headers      bool
	Width        int
	GlamourStyle string
	Title        string
	Log          *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}

func isTerminal(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// ResolveMode replaces ModeAuto with styled output on a terminal and plain
// output otherwise.
func ResolveMode(m Mode, w io.Writer) Mode {
	if m != ModeAuto {
		return m
	}
	if _, ok := isTerminal(w); ok {
		return ModeStyled
	}
	return ModePlain
}

// ResolveWidth returns width when positive, else the terminal width of w,
// else 80.
func ResolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if fd, ok := isTerminal(w); ok {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}
	return fallbackWidth
}

// RenderUnits writes units according to options.
func RenderUnits(ctx context.Context, w io.Writer, units []api.Unit, opts Options) error {
	mode := ResolveMode(opts.Mode, w)
	opts.logger().Debug("presenting units", zap.Stringer("mode", mode), zap.Int("units", len(units)))

	switch mode {
	case ModeJSON:
		return format.WriteJSONUnits(w, units, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONUnits(w, units)
	case ModeYAML:
		return format.WriteYAMLUnits(w, units)
	case ModeStyled:
		return format.WriteStyledUnits(w, units, ResolveWidth(opts.Width, w))
	case ModePretty:
		return format.WritePrettyUnits(w, units, opts.GlamourStyle, ResolveWidth(opts.Width, w))
	case ModeTUI:
		width := ResolveWidth(opts.Width, os.Stdout)
		title := opts.Title
		if title == "" {
			title = "blockfmt"
		}
		return tui.Run(ctx, title, format.StyledString(units, format.DefaultStyles(), width))
	default:
		return format.WritePlainUnits(w, units)
	}
}

// RenderBlocks writes the raw block sequence. Modes without a block
// rendering fall back to the plain listing.
func RenderBlocks(w io.Writer, blocks []api.Block, opts Options) error {
	switch ResolveMode(opts.Mode, w) {
	case ModeJSON:
		return format.WriteJSONBlocks(w, blocks, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONBlocks(w, blocks)
	case ModeYAML:
		return format.WriteYAMLBlocks(w, blocks)
	default:
		return format.WritePlainBlocks(w, blocks, opts.Headers)
	}
}
