package stairloop

import "math"

// Projection maps scene space to screen space with a classic dimetric
// (2:1 isometric) projection: +X recedes right, +Z recedes left, +Y is up.
// It is what the preview renderer uses; it is not the authored perspective
// camera, but it preserves the staircase illusion well enough to proof a
// scene without a full 3D host.
type Projection struct {
	// Scale is pixels per scene unit.
	Scale float64
	// OffsetX, OffsetY is the screen position of the scene origin.
	OffsetX, OffsetY float64
}

const (
	isoCos = 0.8660254037844387 // cos(30 deg)
	isoSin = 0.5                // sin(30 deg)
)

// Point projects p to screen coordinates (Y-down).
func (pr Projection) Point(p Point3) (x, y float64) {
	x = (p.X-p.Z)*isoCos*pr.Scale + pr.OffsetX
	y = (p.X+p.Z)*isoSin*pr.Scale - p.Y*pr.Scale + pr.OffsetY
	return x, y
}

// Depth returns a sort key for painter's-algorithm ordering: larger values
// draw later (nearer the viewer).
func (pr Projection) Depth(p Point3) float64 {
	return p.X + p.Z - p.Y*1e-3
}

// FitProjection returns a projection that fits the given scene-space bounds
// into a screen of the given size with a uniform margin. The bounds are the
// extreme projected corners of the content.
func FitProjection(points []Point3, screenW, screenH, margin float64) Projection {
	if len(points) == 0 {
		return Projection{Scale: 1, OffsetX: screenW / 2, OffsetY: screenH / 2}
	}

	// Project at unit scale, then solve for scale and offsets.
	unit := Projection{Scale: 1}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		x, y := unit.Point(p)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	w := maxX - minX
	h := maxY - minY
	scale := 1.0
	if w > 0 && h > 0 {
		scale = math.Min((screenW-2*margin)/w, (screenH-2*margin)/h)
	}
	return Projection{
		Scale:   scale,
		OffsetX: screenW/2 - scale*(minX+maxX)/2,
		OffsetY: screenH/2 - scale*(minY+maxY)/2,
	}
}
