package stairloop

// Camera describes the locked perspective view the illusion was composed
// for. The impossible staircase only reads as a continuous loop from this
// exact angle, so scene hosts should treat a locked camera as
// non-negotiable.
type Camera struct {
	Name      string
	Translate Point3
	// Rotate is in degrees, X/Y/Z order.
	Rotate Point3
	// FilmAperture is the horizontal and vertical film gate in inches.
	FilmAperture [2]float64
	// FocalLength is in millimeters.
	FocalLength float64
	// Resolution is the render width and height in pixels.
	Resolution  [2]int
	AspectRatio float64
	// Locked asks the host to reject interactive transform edits.
	Locked bool
}

// DefaultCamera returns the authored staircase camera. The translation and
// rotation were tuned by hand until the step circuit visually closes.
func DefaultCamera() Camera {
	return Camera{
		Name:         "perspective_stairs_cam",
		Translate:    Point3{X: 18.65003909667751, Y: 46.65651136436399, Z: -20.5378338921984},
		Rotate:       Point3{X: 139.96122876136397, Y: 49.33971297600335, Z: 179.99999999999895},
		FilmAperture: [2]float64{1.41732, 0.94488},
		FocalLength:  35.0,
		Resolution:   [2]int{960, 540},
		AspectRatio:  1.7777776718139648,
		Locked:       true,
	}
}
