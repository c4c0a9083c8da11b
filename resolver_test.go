package schematic

import (
	"bytes"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// stubResolver recognizes a single block id and records every pair it
// is asked to resolve.
type stubResolver struct {
	knownID byte
	handle  world.Block
	ids     []byte
	metas   []byte
}

func (r *stubResolver) Resolve(id, meta byte) (world.Block, bool) {
	r.ids = append(r.ids, id)
	r.metas = append(r.metas, meta)
	if id == r.knownID {
		return r.handle, true
	}
	return nil, false
}

func TestResolvedBlocksSkipsUnknown(t *testing.T) {
	// A legacy document: the resolver must see the remapped ids, and
	// cells it rejects are skipped rather than yielded.
	s := New(Legacy)
	s.Width, s.Height, s.Length = 2, 1, 1
	s.Blocks = []byte{95, 3}
	s.Data = []byte{7, 0}

	r := &stubResolver{knownID: 241, handle: block.Glass{}}
	var gotPos []cube.Pos
	var gotBlocks []world.Block
	for pos, b := range s.ResolvedBlocks(r) {
		gotPos = append(gotPos, pos)
		gotBlocks = append(gotBlocks, b)
	}

	if len(gotPos) != 1 || gotPos[0] != (cube.Pos{0, 0, 0}) {
		t.Errorf("yielded positions = %v, want [(0,0,0)]", gotPos)
	}
	if len(gotBlocks) != 1 || gotBlocks[0] != world.Block(block.Glass{}) {
		t.Errorf("yielded blocks = %v, want the resolver's handle", gotBlocks)
	}

	// The stained glass id arrives remapped, with its metadata kept.
	if !bytes.Equal(r.ids, []byte{241, 3}) {
		t.Errorf("resolver saw ids %v, want [241 3]", r.ids)
	}
	if !bytes.Equal(r.metas, []byte{7, 0}) {
		t.Errorf("resolver saw metadata %v, want [7 0]", r.metas)
	}
}

func TestResolvedBlocksRestartable(t *testing.T) {
	s := New(Pocket)
	s.SetBlocksInVolume(Volume{Max: cube.Pos{1, 0, 0}}, []Block{
		{ID: 20, Pos: cube.Pos{0, 0, 0}},
		{ID: 20, Pos: cube.Pos{1, 0, 0}},
	})

	r := &stubResolver{knownID: 20, handle: block.Glass{}}
	seq := s.ResolvedBlocks(r)
	for range 2 {
		n := 0
		for range seq {
			n++
		}
		if n != 2 {
			t.Fatalf("iteration yielded %d blocks, want 2", n)
		}
	}

	// Breaking out early stops the walk instead of draining it.
	for range seq {
		break
	}
}
