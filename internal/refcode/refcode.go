// Package refcode produces booking numbers: the letter W followed by
// exactly eight digits.
package refcode

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Prefix is the fixed first character of every booking number.
const Prefix = "W"

const digits = 8

// Generator hands out booking number candidates. The first candidate for a
// submission is derived from the clock; retry candidates after a uniqueness
// conflict are random so a collided slice is never reused.
type Generator struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorAt uses the given clock. Used in tests.
func NewGeneratorAt(now func() time.Time) *Generator {
	g := NewGenerator()
	g.now = now
	return g
}

// Next returns a candidate from the last eight digits of the current unix
// millisecond timestamp. Uniqueness is probabilistic only; the store's
// unique constraint is the real guard.
func (g *Generator) Next() string {
	ms := g.now().UnixMilli()
	return fmt.Sprintf("%s%08d", Prefix, ms%1e8)
}

// Retry returns a random candidate for use after a conflict.
func (g *Generator) Retry() string {
	g.mu.Lock()
	n := g.rnd.Int63n(1e8)
	g.mu.Unlock()
	return fmt.Sprintf("%s%08d", Prefix, n)
}
