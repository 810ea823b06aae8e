package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mithrel/blockfmt/pkg/api"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// WriteYAMLUnits writes units as a YAML sequence of records.
func WriteYAMLUnits(w io.Writer, units []api.Unit) error {
	return writeYAML(w, Records(units))
}

func WriteYAMLBlocks(w io.Writer, blocks []api.Block) error {
	return writeYAML(w, nonNilBlocks(blocks))
}
