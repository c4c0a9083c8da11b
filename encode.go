package schematic

import (
	"errors"
	"fmt"
	"math"

	"github.com/Denkerkammer/libschematic/nbt"
)

// rootName is the name given to the root compound of encoded files.
// Readers accept any root name; this one matches what historical tools
// wrote.
const rootName = "Schematic"

// ErrBufferSize is returned by Encode when the Blocks and Data buffers
// do not both hold exactly Width*Height*Length entries. It reports a
// violated document precondition, not a stream failure.
var ErrBufferSize = errors.New("schematic: buffer size does not match dimensions")

// ErrDimensionRange is returned by Encode when an extent cannot be
// represented in the signed short field the wire format stores it in.
// Truncating instead would silently corrupt the file for every reader.
var ErrDimensionRange = errors.New("schematic: dimensions exceed short range")

// Encode serializes the document into a complete schematic file:
// a tag tree wrapped in a gzip stream. Given a document whose extents
// fit the wire format's short fields and whose buffers match its
// dimensions, encoding cannot fail, and the document remains readable
// and mutable afterwards.
func (s *Schematic) Encode() ([]byte, error) {
	for _, extent := range []int{s.Width, s.Height, s.Length} {
		if extent < 0 || extent > math.MaxInt16 {
			return nil, fmt.Errorf("%w: %d×%d×%d", ErrDimensionRange, s.Width, s.Height, s.Length)
		}
	}

	cells := s.Width * s.Height * s.Length
	if len(s.Blocks) != cells || len(s.Data) != cells {
		return nil, fmt.Errorf("%w: %d×%d×%d wants %d cells, have %d block and %d data entries",
			ErrBufferSize, s.Width, s.Height, s.Length, cells, len(s.Blocks), len(s.Data))
	}

	root := nbt.NewCompound()
	root.Set("Width", &nbt.Short{Value: int16(s.Width)})
	root.Set("Height", &nbt.Short{Value: int16(s.Height)})
	root.Set("Length", &nbt.Short{Value: int16(s.Length)})
	root.Set("Materials", &nbt.String{Value: string(s.Materials)})
	root.Set("Blocks", &nbt.ByteArray{Value: s.Blocks})
	root.Set("Data", &nbt.ByteArray{Value: s.Data})
	if s.Variant == Legacy {
		if s.Entities != nil {
			root.Set("Entities", s.Entities)
		}
		if s.TileEntities != nil {
			root.Set("TileEntities", s.TileEntities)
		}
	}

	return deflate(nbt.Marshal(rootName, root)), nil
}
