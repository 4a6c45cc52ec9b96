package tasks

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/on-the-ground/tabulated_go/functions/basic"
)

// Generator yields a deterministic stream of random tasks for a seed:
// Log with base in (1, 10], left in [0, 100), right in [100, 200) and step
// in [0, 1). A zero step is kept and surfaces as a failed Result.
//
// Not safe for concurrent use.
type Generator struct {
	src *rand.ChaCha8
	rnd *rand.Rand
	seq int
}

func NewGenerator(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	return &Generator{src: src, rnd: rand.New(src)}
}

func (g *Generator) Next() Task {
	base := 1 + g.rnd.Float64()*9
	if base-1 < 1e-10 {
		base = 1.1
	}
	t := Task{
		// ChaCha8 reads never fail
		ID:       uuid.Must(uuid.NewRandomFromReader(g.src)),
		Seq:      g.seq,
		Function: basic.MustLog(base),
		Left:     g.rnd.Float64() * 100,
		Right:    100 + g.rnd.Float64()*100,
		Step:     g.rnd.Float64(),
	}
	g.seq++
	return t
}
