// Package schematic implements the .schematic voxel container format: a
// gzip-compressed, big-endian tag tree describing a cuboid of block ids
// and per-block metadata, with optional entity sub-trees.
//
// Two historical on-disk variants are supported. The legacy variant
// (MCEdit era) carries entity and tile entity payloads and uses obsolete
// block ids that are remapped on read. The pocket variant stores only
// the block and data arrays and iterates its cells in a different axis
// order.
package schematic

import (
	"fmt"
	"iter"

	"github.com/Denkerkammer/libschematic/nbt"
	"github.com/df-mc/dragonfly/server/block/cube"
)

// Materials is the format-version tag stored in a schematic file. It
// identifies the tool family that produced the file and therefore which
// block registry its ids belong to.
type Materials string

const (
	// MaterialsClassic marks files exported from Classic-era tools.
	MaterialsClassic Materials = "Classic"
	// MaterialsAlpha marks legacy MCEdit exports, the most common kind.
	MaterialsAlpha Materials = "Alpha"
	// MaterialsPocket marks files written in the pocket variant.
	MaterialsPocket Materials = "Pocket"
	// MaterialsUnknown is used for files carrying an unrecognized tag.
	MaterialsUnknown Materials = "Unknown"
)

// Variant selects between the two on-disk document layouts.
type Variant int

const (
	// Legacy is the MCEdit-era variant. It carries entity sub-trees,
	// iterates X outer, Y middle, Z inner, and derives its dimensions
	// from the highest populated position, anchored at the origin.
	Legacy Variant = iota
	// Pocket is the newer variant. It stores block and data arrays
	// only, iterates X outer, Z middle, Y inner, and tracks its
	// dimensions explicitly.
	Pocket
)

// Block describes a single cell of a schematic: a numeric block id
// (0-255), a metadata value (low 4 bits) and a position. Blocks are
// value copies; mutating one never affects the document it came from.
type Block struct {
	ID   byte
	Meta byte
	Pos  cube.Pos
}

// Schematic is a decoded or under-construction schematic document. The
// zero-dimension document is valid and encodes to empty buffers.
//
// A Schematic owns its buffers exclusively and is not safe for
// concurrent mutation; callers needing parallelism should use separate
// documents.
type Schematic struct {
	// Variant selects the on-disk layout and the axis iteration order.
	Variant Variant
	// Width, Height and Length are the cuboid extents along X, Y and Z.
	Width, Height, Length int
	// Materials is the version tag written to the file.
	Materials Materials
	// Blocks holds one block id per cell, Data one metadata value per
	// cell, both laid out in the order computed by Index. Entries
	// beyond the end of either buffer read as zero.
	Blocks []byte
	Data   []byte

	// Entities and TileEntities are opaque sub-trees carried through
	// unmodified. Only the legacy variant stores them.
	Entities     nbt.Tag
	TileEntities nbt.Tag
}

// New creates an empty schematic document of the given variant.
func New(v Variant) *Schematic {
	m := MaterialsPocket
	if v == Legacy {
		m = MaterialsAlpha
	}
	return &Schematic{Variant: v, Materials: m}
}

// SetBlocksInVolume sizes the document to the given volume and writes
// every block of blocks at its offset relative to the volume's minimum
// corner. Buffers grow on demand, zero filled, if a block lies above
// the volume; blocks outside the volume's X/Z footprint are a
// programming error and panic.
func (s *Schematic) SetBlocksInVolume(vol Volume, blocks []Block) {
	w, h, l := vol.Dimensions()
	s.Width, s.Height, s.Length = w, h, l
	s.Blocks = make([]byte, w*h*l)
	s.Data = make([]byte, w*h*l)

	for _, b := range blocks {
		x := b.Pos.X() - vol.Min.X()
		y := b.Pos.Y() - vol.Min.Y()
		z := b.Pos.Z() - vol.Min.Z()
		s.setBlockAt(Index(x, y, z, w, l), b.ID, b.Meta)
	}
}

// SetBlocks populates the document from a bare block list, deriving the
// volume from the positions themselves in a first pass.
//
// The legacy variant keeps the quirk of the files it reproduces: the
// volume is assumed to start at the origin and each dimension is the
// highest populated coordinate plus one, so positions are not
// translated and must be non-negative; a negative position is a
// programming error and panics. The pocket variant translates every
// position by the per-axis minimum, which may be negative.
func (s *Schematic) SetBlocks(blocks []Block) {
	vol, ok := VolumeOf(blocks)
	if !ok {
		s.Width, s.Height, s.Length = 0, 0, 0
		s.Blocks, s.Data = nil, nil
		return
	}
	if s.Variant == Legacy {
		if vol.Min.X() < 0 || vol.Min.Y() < 0 || vol.Min.Z() < 0 {
			panic(fmt.Sprintf("schematic: legacy documents are anchored at the origin, position %v is negative", vol.Min))
		}
		vol.Min = cube.Pos{}
	}
	s.SetBlocksInVolume(vol, blocks)
}

// Each returns a lazy, restartable sequence over every cell of the
// document, including air. The pocket variant walks X outer, Z middle,
// Y inner; the legacy variant walks X outer, Y middle, Z inner. Cells
// beyond the end of a short buffer read as zero. Documents whose
// materials tag is not Pocket have their ids passed through the legacy
// remap table.
func (s *Schematic) Each() iter.Seq[Block] {
	if s.Variant == Legacy {
		return s.eachLegacy()
	}
	return s.eachPocket()
}

func (s *Schematic) eachPocket() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for x := 0; x < s.Width; x++ {
			for z := 0; z < s.Length; z++ {
				for y := 0; y < s.Height; y++ {
					if !yield(s.blockAt(x, y, z)) {
						return
					}
				}
			}
		}
	}
}

func (s *Schematic) eachLegacy() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for x := 0; x < s.Width; x++ {
			for y := 0; y < s.Height; y++ {
				for z := 0; z < s.Length; z++ {
					if !yield(s.blockAt(x, y, z)) {
						return
					}
				}
			}
		}
	}
}

// blockAt assembles the block descriptor for one in-range cell.
func (s *Schematic) blockAt(x, y, z int) Block {
	i := Index(x, y, z, s.Width, s.Length)
	id := byteAt(s.Blocks, i)
	meta := byteAt(s.Data, i) & 0x0f
	if s.Materials != MaterialsPocket {
		id, meta = remapLegacy(id, meta)
	}
	return Block{ID: id, Meta: meta, Pos: cube.Pos{x, y, z}}
}

// setBlockAt writes a cell at a precomputed offset, growing both
// buffers when the offset lies beyond their current length.
func (s *Schematic) setBlockAt(i int, id, meta byte) {
	s.Blocks = growTo(s.Blocks, i+1)
	s.Data = growTo(s.Data, i+1)
	s.Blocks[i] = id
	s.Data[i] = meta & 0x0f
}

// byteAt reads buf[i], treating any entry beyond the buffer as zero.
func byteAt(buf []byte, i int) byte {
	if i < len(buf) {
		return buf[i]
	}
	return 0
}

// growTo extends buf to at least n bytes, filling new space with zeros.
// Growth through append is geometric, keeping repeated out-of-order
// writes amortized linear.
func growTo(buf []byte, n int) []byte {
	if n <= len(buf) {
		return buf
	}
	return append(buf, make([]byte, n-len(buf))...)
}

// materialsOf normalizes the string read from a file to a known tag.
func materialsOf(s string) Materials {
	switch m := Materials(s); m {
	case MaterialsClassic, MaterialsAlpha, MaterialsPocket:
		return m
	default:
		return MaterialsUnknown
	}
}
