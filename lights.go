package stairloop

// Lighting constants for the frame spotlights: each light hovers a fixed
// distance in front of its frame, and its intensity scales with height so
// frames near the top of the scene read brighter.
const (
	frameLightDistance     = 1.5
	frameLightMidIntensity = 20.0
	frameLightMinIntensity = 10.0
	frameLightMaxIntensity = 30.0
)

// AreaLight is the scene's single large soft light.
type AreaLight struct {
	Name      string
	Transform Transform
	Color     Color
	Intensity float64
	Exposure  float64
	// Normalize divides intensity by surface area when true. Off here so the
	// large light keeps its punch.
	Normalize bool
}

// DefaultAreaLight returns the warm brown key light the scene was authored
// with.
func DefaultAreaLight() AreaLight {
	return AreaLight{
		Name: "brown_area_light",
		Transform: Transform{
			Translate: Point3{X: 0, Y: 32.969, Z: -0.788},
			Rotate:    Point3{X: -90.085, Y: 47.608, Z: -0.063},
			Scale:     Point3{X: 41.011, Y: 41.011, Z: 41.011},
		},
		Color:     Color{R: 0.301, G: 0.181, B: 0.114},
		Intensity: 7.869,
		Exposure:  0.249,
	}
}

// PointLight is a small omnidirectional light.
type PointLight struct {
	Position  Point3
	Color     Color
	Intensity float64
}

// FrameLight places a white point light in front of a picture frame: offset
// along the frame's facing normal, with intensity mapped from the light's
// height and clamped to [10, 30].
func FrameLight(framePos, normal Point3) PointLight {
	pos := framePos.Add(normal.Mul(frameLightDistance))
	return PointLight{
		Position:  pos,
		Color:     Color{R: 1, G: 1, B: 1},
		Intensity: clamp(frameLightMidIntensity+pos.Y, frameLightMinIntensity, frameLightMaxIntensity),
	}
}

// WallFrameLights creates one FrameLight per hung frame on the wall.
func WallFrameLights(w *Wall) []PointLight {
	lights := make([]PointLight, len(w.Frames))
	normal := w.Normal()
	for i, f := range w.Frames {
		lights[i] = FrameLight(w.FrameWorldPosition(f), normal)
	}
	return lights
}
