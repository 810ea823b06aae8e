package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/blockfmt/pkg/api"
)

func newJSONEncoder(w io.Writer, indent bool) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc
}

// WriteJSONUnits writes units as one JSON array of records.
func WriteJSONUnits(w io.Writer, units []api.Unit, indent bool) error {
	return newJSONEncoder(w, indent).Encode(Records(units))
}

func WriteJSONBlocks(w io.Writer, blocks []api.Block, indent bool) error {
	return newJSONEncoder(w, indent).Encode(nonNilBlocks(blocks))
}
