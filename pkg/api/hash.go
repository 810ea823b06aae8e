package api

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a deterministic BLAKE3 hash of a block sequence.
// Kinds and lines are length-prefixed so that boundaries between lines and
// blocks cannot collide.
func Fingerprint(blocks []Block) string {
	h := blake3.New()
	var buf [binary.MaxVarintLen64]byte

	writeUvarint := func(v uint64) {
		n := binary.PutUvarint(buf[:], v)
		h.Write(buf[:n])
	}

	writeUvarint(uint64(len(blocks)))
	for _, b := range blocks {
		writeUvarint(uint64(b.Kind))
		writeUvarint(uint64(len(b.Lines)))
		for _, line := range b.Lines {
			writeUvarint(uint64(len(line)))
			h.Write([]byte(line))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint hashes the document's block sequence.
func (d Document) Fingerprint() string {
	return Fingerprint(d.Blocks)
}
