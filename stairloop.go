package stairloop

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrInvalidInput is returned (wrapped) by constructors and operations that
// receive parameters with no chance of producing a valid result: empty
// waypoint lists, non-positive durations or sizes, rectangles larger than
// their region. Check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Point3 is a 3D coordinate. Value type; all operations return copies.
type Point3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of p and q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Mul returns p scaled by f.
func (p Point3) Mul(f float64) Point3 {
	return Point3{p.X * f, p.Y * f, p.Z * f}
}

// Rotate rotates p around the X, Y, and Z axes in that order. Angles are in
// radians.
func (p Point3) Rotate(ax, ay, az float64) Point3 {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)
	cosZ, sinZ := math.Cos(az), math.Sin(az)

	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y1, z1

	x1 := p.X*cosY + p.Z*sinY
	z2 := -p.X*sinY + p.Z*cosY
	p.X, p.Z = x1, z2

	x2 := p.X*cosZ - p.Y*sinZ
	y2 := p.X*sinZ + p.Y*cosZ
	p.X, p.Y = x2, y2

	return p
}

// lerpPoint linearly interpolates between a and b by t.
func lerpPoint(a, b Point3, t float64) Point3 {
	return Point3{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
		Z: (1-t)*a.Z + t*b.Z,
	}
}

// Color is an RGB emission color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Range is a general-purpose min/max range, used wherever a value is drawn
// from a uniform distribution (frame sizes, bounce tuning sweeps).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a value uniformly distributed in [Min, Max] drawn from rng.
// If rng is nil the shared global source is used.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.Float64()*(r.Max-r.Min)
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Transform is a translate/rotate/scale placement for a scene element.
// Rotation is in degrees (X, Y, Z order), matching authored scene data.
type Transform struct {
	Translate Point3 `yaml:"translate"`
	Rotate    Point3 `yaml:"rotate"`
	Scale     Point3 `yaml:"scale"`
}

// IdentityTransform returns a transform with unit scale and no translation
// or rotation.
func IdentityTransform() Transform {
	return Transform{Scale: Point3{1, 1, 1}}
}

// Apply transforms the local point p into the parent space: scale, then
// rotation (degrees, X/Y/Z order), then translation. A zero Scale is treated
// as unit scale so that zero-value transforms are usable.
func (t Transform) Apply(p Point3) Point3 {
	s := t.Scale
	if s == (Point3{}) {
		s = Point3{1, 1, 1}
	}
	p = Point3{p.X * s.X, p.Y * s.Y, p.Z * s.Z}
	p = p.Rotate(radians(t.Rotate.X), radians(t.Rotate.Y), radians(t.Rotate.Z))
	return p.Add(t.Translate)
}

// YawNormal returns the unit +Z axis of the transform after its yaw
// (Y rotation) is applied. Walls face +Z in local space, so this is the
// world-space facing direction of a wall placed with this transform.
func (t Transform) YawNormal() Point3 {
	yaw := radians(t.Rotate.Y)
	return Point3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newRNG returns a seeded deterministic source. Two sources built from the
// same seed produce identical streams.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
