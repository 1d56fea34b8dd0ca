package mosaic

import (
	"math/rand/v2"
	"time"

	"github.com/ironsheep/photomosaic/internal/imaging"
)

// Within reports whether every channel of a differs from the matching
// channel of b by at most tolerance.
func Within(a, b imaging.RGBColor, tolerance int) bool {
	return channelWithin(a.R, b.R, tolerance) &&
		channelWithin(a.G, b.G, tolerance) &&
		channelWithin(a.B, b.B, tolerance)
}

func channelWithin(a, b uint8, tolerance int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// Candidates returns, in library order, every tile whose average color is
// Within tolerance of target.
func (l *Library) Candidates(target imaging.RGBColor, tolerance int) []*Tile {
	var out []*Tile
	for i := 0; i < l.Len(); i++ {
		if t := l.Tile(i); Within(t.Average, target, tolerance) {
			out = append(out, t)
		}
	}
	return out
}

// NewSource returns a PCG source seeded with seed, or with the current time
// when seed is zero.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.NewPCG(now, now>>17|now<<47)
	}
	return rand.NewPCG(seed, seed)
}

// Matcher picks a replacement tile for a block color.
//
// Calls are independent: a tile may be chosen any number of times. A Matcher
// owns its random source and must not be shared between goroutines.
type Matcher struct {
	lib       *Library
	tolerance int
	rnd       *rand.Rand
}

// NewMatcher returns a Matcher over lib. A nil src is replaced by
// NewSource(0).
func NewMatcher(lib *Library, tolerance int, src rand.Source) *Matcher {
	if src == nil {
		src = NewSource(0)
	}
	return &Matcher{lib: lib, tolerance: tolerance, rnd: rand.New(src)}
}

// Match returns a tile chosen uniformly among the candidates for target,
// or nil and false when no tile is close enough.
func (m *Matcher) Match(target imaging.RGBColor) (*Tile, bool) {
	candidates := m.lib.Candidates(target, m.tolerance)
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[m.rnd.IntN(len(candidates))], true
}
