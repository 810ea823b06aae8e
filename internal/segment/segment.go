package segment

import (
	"strings"

	"github.com/mithrel/blockfmt/pkg/api"
)

// cursor walks the physical lines of the input, trimming each on access.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) done() bool { return c.pos >= len(c.lines) }

func (c *cursor) peek() string { return strings.TrimSpace(c.lines[c.pos]) }

// skipBlank advances past blank lines and reports whether a line remains.
func (c *cursor) skipBlank() bool {
	for !c.done() && c.peek() == "" {
		c.pos++
	}
	return !c.done()
}

// munch consumes the current line and every immediately following line
// whose trimmed form satisfies match. The first failing line is left for
// the next scan step.
func (c *cursor) munch(match func(string) bool) []string {
	group := []string{c.peek()}
	c.pos++
	for !c.done() {
		line := c.peek()
		if !match(line) {
			break
		}
		group = append(group, line)
		c.pos++
	}
	return group
}

// Segment decomposes text into an ordered sequence of blocks. Blank lines
// are dropped; every other line lands in exactly one block. Segment never
// fails: text without any recognised convention yields Text blocks, and
// blank input yields an empty sequence.
func Segment(text string) []api.Block {
	c := &cursor{lines: strings.Split(text, "\n")}
	blocks := make([]api.Block, 0)

	for c.skipBlank() {
		line := c.peek()
		r := classify(line)

		switch {
		case r.group:
			blocks = append(blocks, api.Block{Kind: r.kind, Lines: c.munch(r.match)})
		case r.kind == api.KindHeader:
			blocks = append(blocks, api.Block{Kind: r.kind, Lines: []string{StripHeader(line)}})
			c.pos++
		default:
			blocks = append(blocks, api.Block{Kind: r.kind, Lines: []string{line}})
			c.pos++
		}
	}
	return blocks
}
