package api

import "fmt"

// Kind tags which grouping rule produced a Block.
type Kind int

const (
	KindText Kind = iota
	KindHeader
	KindTable
	KindList
	KindBoldLine
)

var kindNames = map[Kind]string{
	KindText:     "text",
	KindHeader:   "header",
	KindTable:    "table",
	KindList:     "list",
	KindBoldLine: "bold",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses the names produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindText, false
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown block kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown block kind %q", string(b))
	}
	*k = parsed
	return nil
}

// Block is one contiguous, typed group of trimmed input lines.
// Header, BoldLine and Text blocks hold exactly one line; Table and List
// blocks hold every line of the group in input order.
type Block struct {
	Kind  Kind     `json:"kind" yaml:"kind"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Line returns the payload of a single-line block, or the first line of a group.
func (b Block) Line() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0]
}

// UnitKind discriminates the RenderUnit variants.
type UnitKind string

const (
	UnitHeader    UnitKind = "header"
	UnitTable     UnitKind = "table"
	UnitList      UnitKind = "list"
	UnitProse     UnitKind = "prose"
	UnitHighlight UnitKind = "highlight"
)

// Unit is the renderable form of one Block. The set of implementations is closed.
type Unit interface {
	UnitKind() UnitKind
	isUnit()
}

type HeaderUnit struct {
	Text string
}

// TableUnit rows are kept as parsed; they are not padded or truncated to len(Headers).
type TableUnit struct {
	Headers []string
	Rows    [][]string
}

// ListUnit items have their markers stripped.
type ListUnit struct {
	Items []string
}

// Span is a run of prose text, optionally emphasized.
type Span struct {
	Text       string `json:"text" yaml:"text"`
	Emphasized bool   `json:"emphasized" yaml:"emphasized"`
}

type ProseUnit struct {
	Spans []Span
}

// HighlightUnit is a prose line flagged for callout treatment by keyword.
type HighlightUnit struct {
	Text string
}

func (HeaderUnit) UnitKind() UnitKind    { return UnitHeader }
func (TableUnit) UnitKind() UnitKind     { return UnitTable }
func (ListUnit) UnitKind() UnitKind      { return UnitList }
func (ProseUnit) UnitKind() UnitKind     { return UnitProse }
func (HighlightUnit) UnitKind() UnitKind { return UnitHighlight }

func (HeaderUnit) isUnit()    {}
func (TableUnit) isUnit()     {}
func (ListUnit) isUnit()      {}
func (ProseUnit) isUnit()     {}
func (HighlightUnit) isUnit() {}

// PlainText joins the span texts without emphasis markers.
func (p ProseUnit) PlainText() string {
	n := 0
	for _, s := range p.Spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range p.Spans {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Document is the result of processing one response text.
type Document struct {
	Blocks []Block `json:"blocks" yaml:"blocks"`
	Units  []Unit  `json:"-" yaml:"-"`
}
