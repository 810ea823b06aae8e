package format

import "github.com/mithrel/blockfmt/pkg/api"

// Record is the machine-readable form of a Unit. Kind says which of the
// optional fields are populated.
type Record struct {
	Kind    api.UnitKind `json:"kind" yaml:"kind"`
	Text    string       `json:"text,omitempty" yaml:"text,omitempty"`
	Headers []string     `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string   `json:"rows,omitempty" yaml:"rows,omitempty"`
	Items   []string     `json:"items,omitempty" yaml:"items,omitempty"`
	Spans   []api.Span   `json:"spans,omitempty" yaml:"spans,omitempty"`
}

func ToRecord(u api.Unit) Record {
	switch v := u.(type) {
	case api.HeaderUnit:
		return Record{Kind: api.UnitHeader, Text: v.Text}
	case api.TableUnit:
		return Record{Kind: api.UnitTable, Headers: v.Headers, Rows: v.Rows}
	case api.ListUnit:
		return Record{Kind: api.UnitList, Items: v.Items}
	case api.ProseUnit:
		return Record{Kind: api.UnitProse, Spans: v.Spans}
	case api.HighlightUnit:
		return Record{Kind: api.UnitHighlight, Text: v.Text}
	default:
		return Record{Kind: u.UnitKind()}
	}
}

// Records converts units in order. The result is never nil.
func Records(units []api.Unit) []Record {
	out := make([]Record, 0, len(units))
	for _, u := range units {
		out = append(out, ToRecord(u))
	}
	return out
}

func nonNilBlocks(blocks []api.Block) []api.Block {
	if blocks == nil {
		return []api.Block{}
	}
	return blocks
}
