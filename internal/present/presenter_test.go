package present

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/blockfmt/pkg/api"
)

func TestParseMode(t *testing.T) {
	for i, name := range ModeNames() {
		m, ok := ParseMode(name)
		require.True(t, ok, name)
		assert.Equal(t, Mode(i), m)
		assert.Equal(t, name, m.String())
	}

	m, ok := ParseMode(" JSON ")
	assert.True(t, ok)
	assert.Equal(t, ModeJSON, m)

	_, ok = ParseMode("html")
	assert.False(t, ok)
}

func TestResolveModeNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ModePlain, ResolveMode(ModeAuto, &buf))
	assert.Equal(t, ModeYAML, ResolveMode(ModeYAML, &buf))
	assert.Equal(t, 80, ResolveWidth(0, &buf))
	assert.Equal(t, 42, ResolveWidth(42, &buf))
}

func TestRenderUnitsModes(t *testing.T) {
	units := []api.Unit{
		api.HeaderUnit{Text: "Top"},
		api.HighlightUnit{Text: "Growth 20%"},
	}
	cases := []struct {
		mode Mode
		want string
	}{
		{ModeAuto, "Top\n===\n\n! Growth 20%\n"},
		{ModePlain, "Top\n===\n\n! Growth 20%\n"},
		{ModeNDJSON, "{\"kind\":\"header\",\"text\":\"Top\"}\n{\"kind\":\"highlight\",\"text\":\"Growth 20%\"}\n"},
		{ModeYAML, "- kind: header\n  text: Top\n- kind: highlight\n  text: Growth 20%\n"},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderUnits(context.Background(), &buf, units, Options{Mode: tc.mode}))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	t.Run("styled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderUnits(context.Background(), &buf, units, Options{Mode: ModeStyled, Width: 40}))
		assert.Contains(t, buf.String(), "Growth 20%")
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderUnits(context.Background(), &buf, units, Options{Mode: ModePretty, GlamourStyle: "notty"}))
		assert.Contains(t, buf.String(), "Top")
	})
}

func TestRenderBlocks(t *testing.T) {
	blocks := []api.Block{{Kind: api.KindHeader, Lines: []string{"Top"}}}

	var buf bytes.Buffer
	require.NoError(t, RenderBlocks(&buf, blocks, Options{Mode: ModeJSON}))
	assert.JSONEq(t, `[{"kind":"header","lines":["Top"]}]`, buf.String())

	buf.Reset()
	require.NoError(t, RenderBlocks(&buf, blocks, Options{Mode: ModePretty}))
	assert.Equal(t, []string{"0", "header", "Top"}, strings.Fields(buf.String()))
}
