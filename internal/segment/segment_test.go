package segment

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/blockfmt/pkg/api"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want api.Kind
	}{
		{name: "header", in: "## Foo", want: api.KindHeader},
		{name: "header beats bold", in: "# **Salary** outlook", want: api.KindHeader},
		{name: "header beats table", in: "# a | b | c", want: api.KindHeader},
		{name: "table row", in: "Rank | Job | Salary", want: api.KindTable},
		{name: "table beats list", in: "- a | b | c", want: api.KindTable},
		{name: "table beats bold", in: "**a** | b | c", want: api.KindTable},
		{name: "single pipe is not a table", in: "either | or", want: api.KindText},
		{name: "star list", in: "* Learn Python", want: api.KindList},
		{name: "dash list", in: "- Learn SQL", want: api.KindList},
		{name: "numbered list", in: "12. Practice", want: api.KindList},
		{name: "tab after marker", in: "-\tindented", want: api.KindList},
		{name: "no-break space after marker", in: "-\u00a0item", want: api.KindList},
		{name: "ideographic space after number", in: "1.\u3000item", want: api.KindList},
		{name: "bom after marker", in: "*\ufeffitem", want: api.KindList},
		{name: "list beats bold", in: "* **Python** first", want: api.KindList},
		{name: "marker without space", in: "-dash", want: api.KindText},
		{name: "number without dot", in: "2024 was a good year", want: api.KindText},
		{name: "bold", in: "I recommend **Python**", want: api.KindBoldLine},
		{name: "bold marker inside list-like text", in: "**Upcoming Skill Trends:**", want: api.KindBoldLine},
		{name: "unmatched bold still bold", in: "stray ** here", want: api.KindBoldLine},
		{name: "plain", in: "Just a sentence.", want: api.KindText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []api.Block
	}{
		{
			name: "empty",
			in:   "",
			want: []api.Block{},
		},
		{
			name: "whitespace only",
			in:   "  \n\t\n   \r\n",
			want: []api.Block{},
		},
		{
			name: "header stripped",
			in:   "## Foo",
			want: []api.Block{{Kind: api.KindHeader, Lines: []string{"Foo"}}},
		},
		{
			name: "bare hashes give empty header",
			in:   "###",
			want: []api.Block{{Kind: api.KindHeader, Lines: []string{""}}},
		},
		{
			name: "table grouped",
			in:   "Rank | Job | Salary\n---|---|---\n1 | Engineer | 10\n2 | Analyst | 8",
			want: []api.Block{{Kind: api.KindTable, Lines: []string{
				"Rank | Job | Salary", "---|---|---", "1 | Engineer | 10", "2 | Analyst | 8",
			}}},
		},
		{
			name: "table stops at line with one pipe",
			in:   "a | b | c\n---|---|---\nnot | table",
			want: []api.Block{
				{Kind: api.KindTable, Lines: []string{"a | b | c", "---|---|---"}},
				{Kind: api.KindText, Lines: []string{"not | table"}},
			},
		},
		{
			name: "list grouped",
			in:   "* Learn Python\n* Learn SQL",
			want: []api.Block{{Kind: api.KindList, Lines: []string{"* Learn Python", "* Learn SQL"}}},
		},
		{
			name: "mixed markers group together",
			in:   "1. First\n- second\n* third",
			want: []api.Block{{Kind: api.KindList, Lines: []string{"1. First", "- second", "* third"}}},
		},
		{
			name: "blank line splits groups",
			in:   "* one\n\n* two",
			want: []api.Block{
				{Kind: api.KindList, Lines: []string{"* one"}},
				{Kind: api.KindList, Lines: []string{"* two"}},
			},
		},
		{
			name: "list group absorbs table-looking item",
			in:   "- a\n- b | c | d",
			want: []api.Block{{Kind: api.KindList, Lines: []string{"- a", "- b | c | d"}}},
		},
		{
			name: "table group absorbs header-looking row",
			in:   "a | b | c\n# x | y | z",
			want: []api.Block{{Kind: api.KindTable, Lines: []string{"a | b | c", "# x | y | z"}}},
		},
		{
			name: "bold and text never group",
			in:   "**one**\n**two**\nthree\nfour",
			want: []api.Block{
				{Kind: api.KindBoldLine, Lines: []string{"**one**"}},
				{Kind: api.KindBoldLine, Lines: []string{"**two**"}},
				{Kind: api.KindText, Lines: []string{"three"}},
				{Kind: api.KindText, Lines: []string{"four"}},
			},
		},
		{
			name: "lines are trimmed and CRLF tolerated",
			in:   "  ## Title  \r\n\t* item \r\n  tail\r\n",
			want: []api.Block{
				{Kind: api.KindHeader, Lines: []string{"Title"}},
				{Kind: api.KindList, Lines: []string{"* item"}},
				{Kind: api.KindText, Lines: []string{"tail"}},
			},
		},
		{
			name: "trends response",
			in: strings.Join([]string{
				"## In-Demand Jobs (India)",
				"",
				"Rank | Job Title | Salary Range (INR LPA)",
				"---|---|---",
				"1 | Data Scientist | 8-20",
				"",
				"**Upcoming Skill Trends:**",
				"* Generative AI",
				"* Cloud",
				"**Market Outlook:** strong Growth ahead",
				"Keep learning!",
			}, "\n"),
			want: []api.Block{
				{Kind: api.KindHeader, Lines: []string{"In-Demand Jobs (India)"}},
				{Kind: api.KindTable, Lines: []string{"Rank | Job Title | Salary Range (INR LPA)", "---|---|---", "1 | Data Scientist | 8-20"}},
				{Kind: api.KindBoldLine, Lines: []string{"**Upcoming Skill Trends:**"}},
				{Kind: api.KindList, Lines: []string{"* Generative AI", "* Cloud"}},
				{Kind: api.KindBoldLine, Lines: []string{"**Market Outlook:** strong Growth ahead"}},
				{Kind: api.KindText, Lines: []string{"Keep learning!"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.in)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Segment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripListMarker(t *testing.T) {
	tests := map[string]string{
		"* Learn Python": "Learn Python",
		"-   spaced":     "spaced",
		"10. Tenth":      "Tenth",
		"plain":          "plain",
		"*\tTabbed ":     "Tabbed",
		"-\u00a0item":    "item",
		"1.\u3000item":   "item",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripListMarker(in), in)
	}
}

// sampleResponse builds a pseudo-random response mixing every convention,
// including malformed ones.
func sampleResponse(r *rand.Rand, lines int) string {
	pool := []func() string{
		func() string { return "" },
		func() string { return "   " },
		func() string { return fmt.Sprintf("%s Heading %d", strings.Repeat("#", 1+r.Intn(4)), r.Intn(100)) },
		func() string { return fmt.Sprintf("%d | Role %d | %d LPA", r.Intn(10), r.Intn(10), r.Intn(40)) },
		func() string { return "---|---|---" },
		func() string { return "| lone |" },
		func() string { return fmt.Sprintf("* item %d", r.Intn(50)) },
		func() string { return fmt.Sprintf("%d. step", r.Intn(20)) },
		func() string { return "Use **bold** and **more** text" },
		func() string { return "odd ** delimiter" },
		func() string { return "****" },
		func() string { return "Salary Growth is strong" },
		func() string { return "\t plain prose \t" },
		func() string { return "#" },
		func() string { return "|||" },
		func() string { return "🚀 emoji **rocket** line" },
	}
	var b strings.Builder
	for i := 0; i < lines; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pool[r.Intn(len(pool))]())
	}
	return b.String()
}

func TestSegmentPartitionsNonBlankLines(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		in := sampleResponse(r, 1+r.Intn(40))

		var input []string
		for _, line := range strings.Split(in, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				input = append(input, s)
			}
		}

		idx := 0
		for _, b := range Segment(in) {
			require.NotEmpty(t, b.Lines, "block without lines in %q", in)
			for _, line := range b.Lines {
				require.Less(t, idx, len(input), "more lines out than in for %q", in)
				want := input[idx]
				if b.Kind == api.KindHeader {
					want = StripHeader(want)
				}
				require.Equal(t, want, line, "line %d of %q", idx, in)
				idx++
			}
			if b.Kind != api.KindTable && b.Kind != api.KindList {
				require.Len(t, b.Lines, 1)
			}
		}
		require.Equal(t, len(input), idx, "lines dropped for %q", in)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		in := sampleResponse(r, 30)
		first := Segment(in)
		second := Segment(in)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("non-deterministic segmentation (-first +second):\n%s", diff)
		}
		assert.Equal(t, api.Fingerprint(first), api.Fingerprint(second))
	}
}

func TestSegmentLargeInput(t *testing.T) {
	in := strings.Repeat("a | b | c\n", 50000) + strings.Repeat("* x\n", 50000) + strings.Repeat("**", 10001)
	blocks := Segment(in)
	require.Len(t, blocks, 3)
	assert.Len(t, blocks[0].Lines, 50000)
	assert.Len(t, blocks[1].Lines, 50000)
	assert.Equal(t, api.KindBoldLine, blocks[2].Kind)
}
