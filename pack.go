package stairloop

import (
	"fmt"
	"math/rand/v2"

	"github.com/jbeda/geom"
)

const defaultMaxAttempts = 300

// Placement is an accepted rectangle: center position and size.
// Immutable once returned.
type Placement struct {
	// X, Y is the rectangle center within the packer's region.
	X, Y float64
	// Width, Height is the rectangle size.
	Width, Height float64
}

// Bounds returns the placement's axis-aligned bounding rectangle.
func (p Placement) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: p.X - p.Width/2, Y: p.Y - p.Height/2},
		Max: geom.Coord{X: p.X + p.Width/2, Y: p.Y + p.Height/2},
	}
}

// PackerConfig configures a Packer.
type PackerConfig struct {
	// Region is the 2D area rectangles must fit inside, edges included.
	Region geom.Rect
	// Clearance is the minimum gap required between any two rectangles.
	Clearance float64
	// MaxAttempts is the number of random candidate positions tried per
	// rectangle before giving up. Defaults to 300 when zero.
	MaxAttempts int
	// Seed makes placement reproducible. Two packers with equal configs
	// accept identical placements for identical request sequences.
	Seed uint64
}

// Packer places axis-aligned rectangles inside a bounded region with no two
// accepted rectangles overlapping, by rejection sampling: each rectangle is
// tried at uniformly random in-bounds centers until one is clear of every
// previous placement or the attempt budget runs out.
//
// The accepted set is append-only within a run. Placement cost is
// O(MaxAttempts x accepted), so dense runs with many rectangles are
// quadratic; at hundreds of rectangles this is not a concern.
type Packer struct {
	region      geom.Rect
	clearance   float64
	maxAttempts int
	rng         *rand.Rand
	placed      []Placement
}

// NewPacker validates cfg and creates an empty packer.
func NewPacker(cfg PackerConfig) (*Packer, error) {
	if cfg.Region.Width() <= 0 || cfg.Region.Height() <= 0 {
		return nil, fmt.Errorf("stairloop: packer region %vx%v: %w",
			cfg.Region.Width(), cfg.Region.Height(), ErrInvalidInput)
	}
	if cfg.Clearance < 0 {
		return nil, fmt.Errorf("stairloop: packer clearance %v: %w", cfg.Clearance, ErrInvalidInput)
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	return &Packer{
		region:      cfg.Region,
		clearance:   cfg.Clearance,
		maxAttempts: attempts,
		rng:         newRNG(cfg.Seed),
	}, nil
}

// Region returns the packer's placement region.
func (p *Packer) Region() geom.Rect {
	return p.region
}

// Place tries to find a non-overlapping position for a w x h rectangle.
//
// On success the placement is recorded and returned with ok=true. Exhausting
// the attempt budget is a normal outcome, not an error: ok=false is returned
// and the caller is expected to discard the rectangle and move on. A request
// that can never succeed — non-positive size, or a rectangle larger than the
// region — fails immediately with ErrInvalidInput.
func (p *Packer) Place(w, h float64) (Placement, bool, error) {
	if w <= 0 || h <= 0 {
		return Placement{}, false, fmt.Errorf("stairloop: rectangle size %vx%v: %w", w, h, ErrInvalidInput)
	}
	if w > p.region.Width() || h > p.region.Height() {
		return Placement{}, false, fmt.Errorf("stairloop: rectangle %vx%v exceeds region %vx%v: %w",
			w, h, p.region.Width(), p.region.Height(), ErrInvalidInput)
	}

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		x := p.uniform(p.region.Min.X+w/2, p.region.Max.X-w/2)
		y := p.uniform(p.region.Min.Y+h/2, p.region.Max.Y-h/2)
		if p.overlaps(x, y, w, h) {
			continue
		}
		pl := Placement{X: x, Y: y, Width: w, Height: h}
		p.placed = append(p.placed, pl)
		return pl, true, nil
	}
	return Placement{}, false, nil
}

// Placements returns the accepted placements in acceptance order.
// The returned slice MUST NOT be mutated by the caller.
func (p *Packer) Placements() []Placement {
	return p.placed
}

// Used returns the ratio of accepted rectangle area to region area.
func (p *Packer) Used() float64 {
	var area float64
	for _, pl := range p.placed {
		area += pl.Width * pl.Height
	}
	return area / (p.region.Width() * p.region.Height())
}

// Reset discards all placements. The random sequence is not rewound.
func (p *Packer) Reset() {
	p.placed = p.placed[:0]
}

// overlaps reports whether a w x h rectangle centered at (x, y) comes within
// the clearance distance of any accepted placement. Two rectangles are clear
// of each other only when separated along at least one axis by more than the
// clearance; exact-clearance contact counts as overlapping.
func (p *Packer) overlaps(x, y, w, h float64) bool {
	c := p.clearance
	for _, q := range p.placed {
		if x+w/2+c < q.X-q.Width/2 ||
			x-w/2-c > q.X+q.Width/2 ||
			y+h/2+c < q.Y-q.Height/2 ||
			y-h/2-c > q.Y+q.Height/2 {
			continue
		}
		return true
	}
	return false
}

// uniform draws from [lo, hi]. lo == hi (a rectangle spanning the full
// region extent) yields the only valid center.
func (p *Packer) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Float64()*(hi-lo)
}
