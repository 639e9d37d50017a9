package stairloop

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

// BounceConfig tunes the shape of the bounce arc between two waypoints.
type BounceConfig struct {
	// Height is the peak height of each bounce above the interpolated base
	// path. Must be > 0.
	Height float64 `yaml:"height"`
	// Steepness scales the width of the parabolic arc. At 4 the parabola
	// touches zero exactly at both waypoints; larger values narrow the
	// airborne window, smaller values widen it. Must be > 0.
	Steepness float64 `yaml:"steepness"`
	// Squash is the squash/stretch amount. Grounded, the object scales to
	// (1+Squash) horizontally and (1-Squash) vertically; at the bounce apex
	// the deformation inverts. Must be > 0.
	Squash float64 `yaml:"squash"`
}

// FrameRounding selects how fractional segment boundaries are mapped to
// integer frame indices when the total frame count does not divide evenly
// across segments.
type FrameRounding uint8

const (
	// RoundTruncate truncates segment edges toward zero. This reproduces the
	// historical behavior: when Frames/(N-1) is non-integral, a frame at the
	// end of a segment can be skipped.
	RoundTruncate FrameRounding = iota
	// RoundNearest rounds segment edges to the nearest frame, so every frame
	// in [0, Frames] is emitted exactly once.
	RoundNearest
)

// Sample is one animation frame of the bouncing object.
type Sample struct {
	// Frame is the integer frame index, 0 through the configured total.
	Frame int
	// Position is the object's center position at this frame.
	Position Point3
	// ScaleH is the uniform horizontal scale factor (applies to both
	// horizontal axes); ScaleV is the vertical scale factor.
	ScaleH, ScaleV float64
	// Color is the object's emission color at this frame.
	Color Color
	// Landing is true on the frame the object touches down on an interior
	// waypoint. Color changes exactly on landing frames.
	Landing bool
}

// ColorPolicy chooses the emission color applied at each landing.
type ColorPolicy interface {
	// Next returns the color for the next landing.
	Next() Color
}

// RandomColors draws uniform-random RGB colors from a seeded source.
// Two policies built from the same seed produce identical streams.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors creates a seeded random color policy.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{rng: newRNG(seed)}
}

// Next returns a color with each channel uniform in [0, 1].
func (c *RandomColors) Next() Color {
	return Color{R: c.rng.Float64(), G: c.rng.Float64(), B: c.rng.Float64()}
}

// Palette cycles through a fixed list of colors. Deterministic without a seed.
type Palette struct {
	colors []Color
	next   int
}

// NewPalette creates a palette policy over the given colors.
// Panics if no colors are given.
func NewPalette(colors ...Color) *Palette {
	if len(colors) == 0 {
		panic("stairloop: palette needs at least one color")
	}
	return &Palette{colors: colors}
}

// Next returns the next palette color, wrapping around at the end.
func (p *Palette) Next() Color {
	c := p.colors[p.next]
	p.next = (p.next + 1) % len(p.colors)
	return c
}

// AnimatorConfig describes a bounce animation along a waypoint path.
type AnimatorConfig struct {
	// Waypoints is the ordered list of points the object lands on. Must be
	// non-empty. A single waypoint yields one static sample at frame 0.
	// For a seamless loop, pass the output of WaypointLoop.
	Waypoints []Point3
	// Frames is the total animation length in frames (fps x seconds).
	// Must be > 0.
	Frames int
	// Bounce tunes the arc shape and squash/stretch.
	Bounce BounceConfig
	// StartColor is the emission color at frame 0.
	StartColor Color
	// Colors supplies one color per landing. Nil defaults to a RandomColors
	// policy with a fixed seed, so even zero-value configs are
	// deterministic; pass your own seeded policy to vary the colors.
	Colors ColorPolicy
	// Rounding selects the segment-edge rounding policy.
	Rounding FrameRounding
}

// Animator generates per-frame bounce samples for a waypoint path.
// Landing colors are drawn once at construction, so the sample sequence is
// restartable: ranging over All twice yields identical samples.
type Animator struct {
	waypoints  []Point3
	frames     int
	bounce     BounceConfig
	startColor Color
	rounding   FrameRounding
	interval   float64 // frames per segment
	landings   []Color // one per interior waypoint
}

// defaultColorSeed seeds the landing-color policy when none is supplied.
const defaultColorSeed = 1

// NewAnimator validates cfg and prepares an animator.
func NewAnimator(cfg AnimatorConfig) (*Animator, error) {
	if len(cfg.Waypoints) == 0 {
		return nil, fmt.Errorf("stairloop: animator needs at least one waypoint: %w", ErrInvalidInput)
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("stairloop: animator duration %d frames: %w", cfg.Frames, ErrInvalidInput)
	}
	// Every segment needs at least one frame, or frame 0 and the landing
	// events of frameless segments would be lost.
	if n := len(cfg.Waypoints); cfg.Frames < n-1 {
		return nil, fmt.Errorf("stairloop: %d frames cannot cover %d bounce segments: %w",
			cfg.Frames, n-1, ErrInvalidInput)
	}
	if cfg.Bounce.Height <= 0 || cfg.Bounce.Steepness <= 0 || cfg.Bounce.Squash <= 0 {
		return nil, fmt.Errorf("stairloop: bounce parameters must be positive (height=%v steepness=%v squash=%v): %w",
			cfg.Bounce.Height, cfg.Bounce.Steepness, cfg.Bounce.Squash, ErrInvalidInput)
	}

	a := &Animator{
		waypoints:  append([]Point3(nil), cfg.Waypoints...),
		frames:     cfg.Frames,
		bounce:     cfg.Bounce,
		startColor: cfg.StartColor,
		rounding:   cfg.Rounding,
	}

	n := len(a.waypoints)
	if n > 1 {
		a.interval = float64(a.frames) / float64(n-1)
	}

	// Draw landing colors eagerly: one per interior waypoint. Doing this up
	// front keeps All restartable even with a stateful color policy.
	if n > 2 {
		policy := cfg.Colors
		if policy == nil {
			policy = NewRandomColors(defaultColorSeed)
		}
		a.landings = make([]Color, n-2)
		for i := range a.landings {
			a.landings[i] = policy.Next()
		}
	}
	return a, nil
}

// Frames returns the total animation length in frames.
func (a *Animator) Frames() int {
	return a.frames
}

// All returns the sample sequence, one sample per frame index in ascending
// order, ending with a pinned sample at the final frame (exact last waypoint,
// identity scale). The sequence is lazy and can be ranged over repeatedly.
func (a *Animator) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		n := len(a.waypoints)
		if n == 1 {
			yield(Sample{Position: a.waypoints[0], ScaleH: 1, ScaleV: 1, Color: a.startColor})
			return
		}

		color := a.startColor
		for i := 0; i < n-1; i++ {
			start := a.waypoints[i]
			end := a.waypoints[i+1]
			lo := a.segmentEdge(i)
			hi := a.segmentEdge(i + 1)

			landed := false
			if i > 0 {
				color = a.landings[i-1]
				landed = true
			}

			for frame := lo; frame < hi; frame++ {
				var s Sample
				if frame == 0 {
					// Frame 0 is pinned: exact first waypoint, no squash.
					s = Sample{Position: start, ScaleH: 1, ScaleV: 1, Color: color}
				} else {
					t := (float64(frame) - float64(i)*a.interval) / a.interval
					s = a.sampleAt(frame, t, start, end)
					s.Color = color
					s.Landing = landed
				}
				landed = false
				if !yield(s) {
					return
				}
			}
		}

		// Final frame is pinned: exact last waypoint, identity scale.
		yield(Sample{
			Frame:    a.frames,
			Position: a.waypoints[n-1],
			ScaleH:   1,
			ScaleV:   1,
			Color:    color,
		})
	}
}

// Samples collects the full sequence into a slice.
func (a *Animator) Samples() []Sample {
	out := make([]Sample, 0, a.frames+1)
	for s := range a.All() {
		out = append(out, s)
	}
	return out
}

// sampleAt computes the in-flight sample for normalized segment time t.
func (a *Animator) sampleAt(frame int, t float64, start, end Point3) Sample {
	pos := lerpPoint(start, end, t)

	// Parabolic arc peaking at the segment midpoint, clipped to zero near
	// the endpoints.
	h := a.bounce.Height
	arc := h * (1 - a.bounce.Steepness*(t-0.5)*(t-0.5))
	bounce := math.Max(0, arc)
	pos.Y += bounce

	s := a.bounce.Squash
	var scaleH, scaleV float64
	if bounce > 0 {
		// Airborne: stretch vertically in proportion to height.
		scaleH = 1 - s*(bounce/h)
		scaleV = 1 + s*(bounce/h)
	} else {
		// Grounded: squash.
		scaleH = 1 + s
		scaleV = 1 - s
	}

	return Sample{Frame: frame, Position: pos, ScaleH: scaleH, ScaleV: scaleV}
}

// segmentEdge maps segment boundary i to an integer frame index under the
// configured rounding policy.
func (a *Animator) segmentEdge(i int) int {
	edge := float64(i) * a.interval
	if a.rounding == RoundNearest {
		return int(math.Round(edge))
	}
	return int(edge)
}
