package schematic

import (
	"iter"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Resolver resolves a numeric block id and metadata value against the
// host block registry. Implementations are supplied by the caller; the
// codec itself never depends on registry contents.
type Resolver interface {
	// Resolve returns the live block for an id/metadata pair, or false
	// when the registry does not know the pair.
	Resolve(id, meta byte) (world.Block, bool)
}

// ResolvedBlocks yields the registry block for every cell the resolver
// recognizes, paired with the cell's position. Cells the resolver
// rejects are skipped. Like Each, the sequence is lazy and restartable,
// and legacy documents are remapped before resolution.
func (s *Schematic) ResolvedBlocks(r Resolver) iter.Seq2[cube.Pos, world.Block] {
	return func(yield func(cube.Pos, world.Block) bool) {
		for b := range s.Each() {
			bl, ok := r.Resolve(b.ID, b.Meta)
			if !ok {
				continue
			}
			if !yield(b.Pos, bl) {
				return
			}
		}
	}
}
