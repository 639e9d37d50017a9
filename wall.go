package stairloop

import (
	"fmt"

	"github.com/jbeda/geom"
)

// WallConfig describes a square wall and the picture frames hung on it.
type WallConfig struct {
	// Size is the wall's width and height.
	Size float64 `yaml:"size"`
	// Depth is the wall's thickness.
	Depth float64 `yaml:"depth"`
	// Padding is the margin around the wall boundary kept free of frames.
	Padding float64 `yaml:"padding"`
	// FrameCount is the number of frame candidates. Candidates that cannot
	// be placed are dropped, so the hung count is usually lower.
	FrameCount int `yaml:"frames"`
	// FrameWidth and FrameHeight are the size ranges frames are drawn from.
	FrameWidth  Range `yaml:"frame_width"`
	FrameHeight Range `yaml:"frame_height"`
	// FrameDepth is the thickness of each frame box.
	FrameDepth float64 `yaml:"frame_depth"`
	// FrameOffset lifts each frame off the wall face so it does not z-fight.
	FrameOffset float64 `yaml:"frame_offset"`
	// Clearance is the minimum gap between frames.
	Clearance float64 `yaml:"clearance"`
	// MaxAttempts is the placement attempt budget per frame.
	MaxAttempts int `yaml:"max_attempts"`
	// Portraits is the number of portrait materials frames draw from.
	Portraits int `yaml:"portraits"`
}

// DefaultWall returns the authored wall: 67 units square, hung with up to
// 400 frames sized 8-12 units, 0.2 units apart.
func DefaultWall() WallConfig {
	return WallConfig{
		Size:        67,
		Depth:       0.2,
		Padding:     3,
		FrameCount:  400,
		FrameWidth:  Range{Min: 8, Max: 12},
		FrameHeight: Range{Min: 8, Max: 12},
		FrameDepth:  0.2,
		FrameOffset: 0.25,
		Clearance:   0.2,
		MaxAttempts: 300,
		Portraits:   6,
	}
}

// PictureFrame is one hung frame. Coordinates are local to the wall face:
// X is centered on the wall, Y runs up from the wall's bottom edge.
type PictureFrame struct {
	Placement Placement
	// Portrait selects which portrait material the front face shows.
	Portrait int
	// Landscape is true when the frame is wider than tall; the scene host
	// rotates the portrait texture a quarter turn on such frames.
	Landscape bool
}

// Wall is a placed wall with its frames. The wall's local origin is the
// center of its bottom edge; Transform carries it to world space.
type Wall struct {
	Name        string
	Transform   Transform
	Size        float64
	Depth       float64
	FrameDepth  float64
	FrameOffset float64
	Frames      []PictureFrame
}

// BuildWall hangs frames on a wall of the given config. Frame sizes are
// drawn uniformly from the configured ranges; each frame is placed by the
// rejection-sampling packer and silently dropped when no clear spot is found
// within the attempt budget. The same seed reproduces the same wall.
func BuildWall(name string, tf Transform, cfg WallConfig, seed uint64) (*Wall, error) {
	if cfg.Size <= 0 || cfg.Depth <= 0 {
		return nil, fmt.Errorf("stairloop: wall %q size %vx%v: %w", name, cfg.Size, cfg.Depth, ErrInvalidInput)
	}
	if cfg.FrameCount < 0 {
		return nil, fmt.Errorf("stairloop: wall %q frame count %d: %w", name, cfg.FrameCount, ErrInvalidInput)
	}
	inner := cfg.Size - cfg.Padding
	if inner <= 0 {
		return nil, fmt.Errorf("stairloop: wall %q padding %v leaves no room: %w", name, cfg.Padding, ErrInvalidInput)
	}

	packer, err := NewPacker(PackerConfig{
		Region: geom.Rect{
			Min: geom.Coord{X: -inner / 2, Y: 0},
			Max: geom.Coord{X: inner / 2, Y: inner},
		},
		Clearance:   cfg.Clearance,
		MaxAttempts: cfg.MaxAttempts,
		Seed:        seed,
	})
	if err != nil {
		return nil, err
	}

	// Separate source for sizes and portrait picks so the packer's attempt
	// count does not perturb them.
	rng := newRNG(seed + 1)

	w := &Wall{
		Name:        name,
		Transform:   tf,
		Size:        cfg.Size,
		Depth:       cfg.Depth,
		FrameDepth:  cfg.FrameDepth,
		FrameOffset: cfg.FrameOffset,
	}
	for i := 0; i < cfg.FrameCount; i++ {
		fw := cfg.FrameWidth.Random(rng)
		fh := cfg.FrameHeight.Random(rng)

		pl, ok, err := packer.Place(fw, fh)
		if err != nil {
			return nil, fmt.Errorf("stairloop: wall %q: %w", name, err)
		}
		if !ok {
			continue // no room left for this one
		}

		frame := PictureFrame{Placement: pl, Landscape: fw > fh}
		if cfg.Portraits > 0 {
			frame.Portrait = rng.IntN(cfg.Portraits)
		}
		w.Frames = append(w.Frames, frame)
	}
	return w, nil
}

// FrameWorldPosition returns the world-space center of a frame's front face:
// the frame sits FrameOffset off the wall face, and its own depth puts the
// front face half a frame-depth further out.
func (w *Wall) FrameWorldPosition(f PictureFrame) Point3 {
	local := Point3{
		X: f.Placement.X,
		Y: f.Placement.Y,
		Z: w.Depth/2 + w.FrameOffset + w.FrameDepth/2,
	}
	return w.Transform.Apply(local)
}

// Normal returns the wall's world-space facing direction.
func (w *Wall) Normal() Point3 {
	return w.Transform.YawNormal()
}
