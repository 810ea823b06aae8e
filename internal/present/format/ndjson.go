package format

import (
	"io"

	"github.com/mithrel/blockfmt/pkg/api"
)

// WriteNDJSONUnits writes one JSON record per line.
func WriteNDJSONUnits(w io.Writer, units []api.Unit) error {
	enc := newJSONEncoder(w, false)
	for _, u := range units {
		if err := enc.Encode(ToRecord(u)); err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSONBlocks writes one JSON block per line.
func WriteNDJSONBlocks(w io.Writer, blocks []api.Block) error {
	enc := newJSONEncoder(w, false)
	for _, b := range blocks {
		if err := enc.Encode(b); err != nil {
			return err
		}
	}
	return nil
}
