package schematic

import (
	"math/rand"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
)

func TestIndexBijection(t *testing.T) {
	const width, height, length = 7, 9, 5

	rng := rand.New(rand.NewSource(2))
	seen := make(map[int][3]int)
	for range 2000 {
		x, y, z := rng.Intn(width), rng.Intn(height), rng.Intn(length)
		off := Index(x, y, z, width, length)

		if prev, ok := seen[off]; ok && prev != [3]int{x, y, z} {
			t.Fatalf("offset %d produced by both %v and (%d,%d,%d)", off, prev, x, y, z)
		}
		seen[off] = [3]int{x, y, z}

		// Invert the mapping and recover the coordinates exactly.
		gx := off % width
		gz := (off / width) % length
		gy := off / (width * length)
		if gx != x || gy != y || gz != z {
			t.Fatalf("inverse of %d = (%d,%d,%d), want (%d,%d,%d)", off, gx, gy, gz, x, y, z)
		}
	}
}

func TestIndexSerializationOrder(t *testing.T) {
	// The on-disk element order is fixed: x fastest, then z, then y.
	const width, length = 2, 2
	want := [][3]int{
		{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1},
		{0, 1, 0}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1},
	}
	for off, pos := range want {
		if got := Index(pos[0], pos[1], pos[2], width, length); got != off {
			t.Errorf("Index%v = %d, want %d", pos, got, off)
		}
	}
}

func TestIndexPanicsOutOfRange(t *testing.T) {
	tests := [][3]int{
		{-1, 0, 0}, {4, 0, 0}, {0, -1, 0}, {0, 0, -1}, {0, 0, 6},
	}
	for _, pos := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Index%v did not panic", pos)
				}
			}()
			Index(pos[0], pos[1], pos[2], 4, 6)
		}()
	}
}

func TestVolumeDimensions(t *testing.T) {
	vol := Volume{Min: cube.Pos{-2, 0, 3}, Max: cube.Pos{1, 4, 3}}
	w, h, l := vol.Dimensions()
	if w != 4 || h != 5 || l != 1 {
		t.Errorf("Dimensions() = %d,%d,%d, want 4,5,1", w, h, l)
	}
}

func TestVolumeOf(t *testing.T) {
	blocks := []Block{
		{ID: 1, Pos: cube.Pos{3, -1, 2}},
		{ID: 2, Pos: cube.Pos{-4, 0, 7}},
		{ID: 3, Pos: cube.Pos{0, 5, -2}},
	}
	vol, ok := VolumeOf(blocks)
	if !ok {
		t.Fatal("VolumeOf returned ok=false for a non-empty list")
	}
	if vol.Min != (cube.Pos{-4, -1, -2}) || vol.Max != (cube.Pos{3, 5, 7}) {
		t.Errorf("VolumeOf = %v..%v, want (-4,-1,-2)..(3,5,7)", vol.Min, vol.Max)
	}

	if _, ok := VolumeOf(nil); ok {
		t.Error("VolumeOf(nil) returned ok=true")
	}
}
