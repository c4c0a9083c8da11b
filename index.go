package schematic

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// Index maps a position inside a width×height×length cuboid to its
// offset in the Blocks and Data buffers:
//
//	offset = (y*length + z)*width + x
//
// The buffers are serialized in exactly this element order, so the
// mapping must never change. Index is defined only for 0 <= x < width
// and 0 <= z < length with non-negative y; out-of-range coordinates are
// a programming error and panic. The upper Y bound is not part of the
// formula and is enforced by the callers that know the height.
func Index(x, y, z, width, length int) int {
	if x < 0 || x >= width || y < 0 || z < 0 || z >= length {
		panic(fmt.Sprintf("schematic: index (%d,%d,%d) out of range for %d×%d footprint", x, y, z, width, length))
	}
	return (y*length+z)*width + x
}

// Volume is an axis-aligned cuboid described by its minimum and maximum
// corner positions. Both corners are inclusive.
type Volume struct {
	Min, Max cube.Pos
}

// Dimensions returns the extent of the volume along each axis.
func (v Volume) Dimensions() (width, height, length int) {
	return v.Max.X() - v.Min.X() + 1,
		v.Max.Y() - v.Min.Y() + 1,
		v.Max.Z() - v.Min.Z() + 1
}

// VolumeOf derives the bounding volume of a set of blocks from their
// absolute positions. Minima may be negative; nothing anchors the
// volume at the origin. ok is false when the block list is empty.
func VolumeOf(blocks []Block) (vol Volume, ok bool) {
	if len(blocks) == 0 {
		return Volume{}, false
	}
	vol.Min = blocks[0].Pos
	vol.Max = blocks[0].Pos
	for _, b := range blocks[1:] {
		vol.Min = cube.Pos{
			min(vol.Min.X(), b.Pos.X()),
			min(vol.Min.Y(), b.Pos.Y()),
			min(vol.Min.Z(), b.Pos.Z()),
		}
		vol.Max = cube.Pos{
			max(vol.Max.X(), b.Pos.X()),
			max(vol.Max.Y(), b.Pos.Y()),
			max(vol.Max.Z(), b.Pos.Z()),
		}
	}
	return vol, true
}
