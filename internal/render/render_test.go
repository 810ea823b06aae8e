package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/blockfmt/pkg/api"
)

func TestRenderHeader(t *testing.T) {
	u, ok := Render(api.Block{Kind: api.KindHeader, Lines: []string{"Foo"}})
	require.True(t, ok)
	assert.Equal(t, api.HeaderUnit{Text: "Foo"}, u)
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   api.Unit
		wantOK bool
	}{
		{
			name:   "header separator and rows",
			lines:  []string{"Rank | Job | Salary", "---|---|---", "1 | Engineer | 10", "2 | Analyst | 8"},
			want:   api.TableUnit{Headers: []string{"Rank", "Job", "Salary"}, Rows: [][]string{{"1", "Engineer", "10"}, {"2", "Analyst", "8"}}},
			wantOK: true,
		},
		{
			name:   "outer pipes produce no empty edge cells",
			lines:  []string{"| a | b |", "|---|---|", "| 1 | 2 |"},
			want:   api.TableUnit{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
			wantOK: true,
		},
		{
			name:   "rows are not padded or truncated",
			lines:  []string{"a | b | c", "---|---|---", "1 | 2", "1 | 2 | 3 | 4"},
			want:   api.TableUnit{Headers: []string{"a", "b", "c"}, Rows: [][]string{{"1", "2"}, {"1", "2", "3", "4"}}},
			wantOK: true,
		},
		{
			name:   "second line skipped even when it holds data",
			lines:  []string{"a | b | c", "x | y | z", "1 | 2 | 3"},
			want:   api.TableUnit{Headers: []string{"a", "b", "c"}, Rows: [][]string{{"1", "2", "3"}}},
			wantOK: true,
		},
		{
			name:   "header and separator only",
			lines:  []string{"a | b | c", "---|---|---"},
			want:   api.TableUnit{Headers: []string{"a", "b", "c"}, Rows: [][]string{}},
			wantOK: true,
		},
		{
			name:   "empty header row still renders",
			lines:  []string{"| | |", "---|---|---", "1 | 2 | 3"},
			want:   api.TableUnit{Headers: []string{}, Rows: [][]string{{"1", "2", "3"}}},
			wantOK: true,
		},
		{
			name:   "single line renders nothing",
			lines:  []string{"Rank | Job | Salary"},
			wantOK: false,
		},
		{
			name:   "no lines renders nothing",
			lines:  nil,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Render(api.Block{Kind: api.KindTable, Lines: tt.lines})
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, got)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	u, ok := Render(api.Block{Kind: api.KindList, Lines: []string{"* Learn Python", "- Learn  SQL ", "3. Build projects"}})
	require.True(t, ok)
	assert.Equal(t, api.ListUnit{Items: []string{"Learn Python", "Learn  SQL", "Build projects"}}, u)
}

func TestRenderBoldLine(t *testing.T) {
	u, ok := Render(api.Block{Kind: api.KindBoldLine, Lines: []string{"I recommend **Python** and **SQL** first."}})
	require.True(t, ok)
	want := api.ProseUnit{Spans: []api.Span{
		{Text: "I recommend "},
		{Text: "Python", Emphasized: true},
		{Text: " and "},
		{Text: "SQL", Emphasized: true},
		{Text: " first."},
	}}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("prose mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []api.Span
	}{
		{
			name: "whole line emphasized",
			in:   "**Upcoming Skill Trends:**",
			want: []api.Span{{Text: "Upcoming Skill Trends:", Emphasized: true}},
		},
		{
			name: "leading emphasis",
			in:   "**Market Outlook:** strong",
			want: []api.Span{{Text: "Market Outlook:", Emphasized: true}, {Text: " strong"}},
		},
		{
			name: "odd delimiter count keeps trailing opener literal",
			in:   "a **b** c **d",
			want: []api.Span{{Text: "a "}, {Text: "b", Emphasized: true}, {Text: " c **d"}},
		},
		{
			name: "lone delimiter is literal",
			in:   "stray ** here",
			want: []api.Span{{Text: "stray ** here"}},
		},
		{
			name: "non-greedy pairing",
			in:   "**a** **b**",
			want: []api.Span{{Text: "a", Emphasized: true}, {Text: " "}, {Text: "b", Emphasized: true}},
		},
		{
			name: "triple star",
			in:   "***x***",
			want: []api.Span{{Text: "*x", Emphasized: true}, {Text: "*"}},
		},
		{
			name: "empty pair dropped",
			in:   "****",
			want: []api.Span{},
		},
		{
			name: "no delimiters",
			in:   "plain",
			want: []api.Span{{Text: "plain"}},
		},
		{
			name: "empty line",
			in:   "",
			want: []api.Span{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitEmphasis(tt.in)); diff != "" {
				t.Fatalf("SplitEmphasis(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	u, ok := Render(api.Block{Kind: api.KindText, Lines: []string{"This role offers 12 LPA with strong Growth."}})
	require.True(t, ok)
	assert.Equal(t, api.HighlightUnit{Text: "This role offers 12 LPA with strong Growth."}, u)

	u, ok = Render(api.Block{Kind: api.KindText, Lines: []string{"growth matters"}})
	require.True(t, ok)
	assert.Equal(t, api.ProseUnit{Spans: []api.Span{{Text: "growth matters"}}}, u, "keyword match is case-sensitive")
}

func TestRendererCustomKeywords(t *testing.T) {
	r := New(NewHighlighter("Remote", "", "Remote"))
	assert.Equal(t, []string{"Remote"}, r.Highlighter().Keywords())

	u, _ := r.Render(api.Block{Kind: api.KindText, Lines: []string{"Remote roles available"}})
	assert.Equal(t, api.UnitHighlight, u.UnitKind())

	u, _ = r.Render(api.Block{Kind: api.KindText, Lines: []string{"Salary is 12 LPA"}})
	assert.Equal(t, api.UnitProse, u.UnitKind())

	none := New(NewHighlighter())
	u, _ = none.Render(api.Block{Kind: api.KindText, Lines: []string{"Salary"}})
	assert.Equal(t, api.UnitProse, u.UnitKind())
}

func TestRenderAllOmitsShortTables(t *testing.T) {
	blocks := []api.Block{
		{Kind: api.KindHeader, Lines: []string{"Jobs"}},
		{Kind: api.KindTable, Lines: []string{"a | b | c"}},
		{Kind: api.KindText, Lines: []string{"done"}},
	}
	units := New(NewHighlighter(DefaultKeywords...)).RenderAll(blocks)
	require.Len(t, units, 2)
	assert.Equal(t, api.UnitHeader, units[0].UnitKind())
	assert.Equal(t, api.UnitProse, units[1].UnitKind())
}
