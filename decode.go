package schematic

import (
	"fmt"
	"io"

	"github.com/Denkerkammer/libschematic/nbt"
)

// DecodeError wraps the first failure encountered while decoding a
// schematic: a corrupt compression envelope, a malformed tag tree or a
// missing field. Decoding never partially populates a document; on
// error no document is returned at all.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return "schematic: decode: " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses a complete schematic file held in memory. The payload
// is decompressed, parsed as a tag tree and mapped onto a document.
// Failures are returned as a *DecodeError wrapping the first underlying
// error.
func Decode(data []byte) (*Schematic, error) {
	raw, err := inflate(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	_, root, err := nbt.Unmarshal(raw)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	s, err := fromTree(root)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return s, nil
}

// Read reads and decodes a schematic from r.
func Read(r io.Reader) (*Schematic, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("read payload: %w", err)}
	}
	return Decode(data)
}

// fromTree maps a parsed tag tree onto a document.
func fromTree(root *nbt.Compound) (*Schematic, error) {
	width, err := root.Short("Width")
	if err != nil {
		return nil, err
	}
	height, err := root.Short("Height")
	if err != nil {
		return nil, err
	}
	length, err := root.Short("Length")
	if err != nil {
		return nil, err
	}
	materials, err := root.String("Materials")
	if err != nil {
		return nil, err
	}
	blocks, err := root.ByteArray("Blocks")
	if err != nil {
		return nil, err
	}
	data, err := root.ByteArray("Data")
	if err != nil {
		return nil, err
	}

	s := &Schematic{
		Width:     int(width),
		Height:    int(height),
		Length:    int(length),
		Materials: materialsOf(materials),
		Blocks:    blocks,
		Data:      data,
	}
	if s.Materials == MaterialsPocket {
		s.Variant = Pocket
		return s, nil
	}

	s.Variant = Legacy
	// Entity sub-trees are optional and carried through untouched.
	if tag, ok := root.Get("Entities"); ok {
		s.Entities = tag
	}
	if tag, ok := root.Get("TileEntities"); ok {
		s.TileEntities = tag
	}
	return s, nil
}
