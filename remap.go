package schematic

// legacyRemap is one entry of the legacy id table: the replacement
// block id and, when meta is non-negative, a metadata value that
// replaces the original outright.
type legacyRemap struct {
	id   byte
	meta int16
}

// preserveMeta keeps the original metadata value of a remapped block.
const preserveMeta int16 = -1

// legacyRemaps translates block ids written by old editors into ids
// valid in the pocket registry. The fence entries fold the per-species
// ids used by newer PC exports into the single pocket fence id with a
// fixed wood-variant metadata value. Ids absent from the table pass
// through unchanged.
var legacyRemaps = map[byte]legacyRemap{
	95:  {241, preserveMeta}, // stained glass
	125: {157, preserveMeta}, // double wooden slab
	126: {158, preserveMeta}, // wooden slab
	160: {102, preserveMeta}, // stained glass pane, no pocket equivalent
	188: {85, 1},             // spruce fence
	189: {85, 2},             // birch fence
	190: {85, 3},             // jungle fence
	191: {85, 5},             // dark oak fence
	192: {85, 4},             // acacia fence
}

// remapLegacy translates a block id and metadata value read from a
// legacy file. Applying it to ids outside the table is a no-op.
func remapLegacy(id, meta byte) (byte, byte) {
	r, ok := legacyRemaps[id]
	if !ok {
		return id, meta
	}
	if r.meta != preserveMeta {
		meta = byte(r.meta)
	}
	return r.id, meta
}
