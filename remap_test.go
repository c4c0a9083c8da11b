package schematic

import "testing"

func TestRemapLegacyTable(t *testing.T) {
	tests := []struct {
		id, meta byte
		wantID   byte
		wantMeta byte
	}{
		{95, 3, 241, 3},    // stained glass keeps its colour
		{125, 2, 157, 2},   // double wooden slab keeps its species
		{126, 10, 158, 10}, // wooden slab keeps its species
		{160, 7, 102, 7},   // stained glass pane falls back to plain pane
		{188, 0, 85, 1},    // spruce fence
		{189, 9, 85, 2},    // birch fence, metadata replaced outright
		{190, 0, 85, 3},    // jungle fence
		{191, 0, 85, 5},    // dark oak fence
		{192, 0, 85, 4},    // acacia fence
	}

	for _, tt := range tests {
		id, meta := remapLegacy(tt.id, tt.meta)
		if id != tt.wantID || meta != tt.wantMeta {
			t.Errorf("remapLegacy(%d, %d) = (%d, %d), want (%d, %d)",
				tt.id, tt.meta, id, meta, tt.wantID, tt.wantMeta)
		}
	}
}

func TestRemapLegacyPassthrough(t *testing.T) {
	for id := 0; id < 256; id++ {
		if _, ok := legacyRemaps[byte(id)]; ok {
			continue
		}
		gotID, gotMeta := remapLegacy(byte(id), 6)
		if gotID != byte(id) || gotMeta != 6 {
			t.Errorf("remapLegacy(%d, 6) = (%d, %d), want unchanged", id, gotID, gotMeta)
		}
	}
}

func TestRemapLegacyIdempotent(t *testing.T) {
	// Every id the table produces lies outside the table's domain, so a
	// second application never changes an already remapped block.
	for id := range legacyRemaps {
		first, meta := remapLegacy(id, 0)
		second, meta2 := remapLegacy(first, meta)
		if second != first || meta2 != meta {
			t.Errorf("remap of %d is not stable: (%d,%d) -> (%d,%d)", id, first, meta, second, meta2)
		}
	}
}
