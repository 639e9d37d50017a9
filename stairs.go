package stairloop

import "fmt"

// Step is one staircase step: an axis-aligned box standing on y=0, described
// by the center of its base footprint and its height.
type Step struct {
	// X, Z is the center of the step's footprint.
	X, Z float64
	// Width, Depth is the footprint size along X and Z.
	Width, Depth float64
	// Height is the distance from the floor plane to the step's top face.
	Height float64
	// FrontLedge is the extrusion depth of the decorative lip on the front
	// face. Zero for all but the first step.
	FrontLedge float64
}

// TopCenter returns the point a ball of the given radius rests at on top of
// this step.
func (s Step) TopCenter(radius float64) Point3 {
	return Point3{X: s.X, Y: s.Height + radius, Z: s.Z}
}

// Flight is a named straight run of steps.
type Flight struct {
	Name  string
	Steps []Step
}

// FlightSpec describes one straight run: the per-step offset and how many
// steps it contains.
type FlightSpec struct {
	DX    float64 `yaml:"dx"`
	DZ    float64 `yaml:"dz"`
	Steps int     `yaml:"steps"`
}

// StairConfig describes an impossible staircase: a tall first step and a
// chain of flights that climbs in a closed horizontal circuit. Each step is
// slightly taller than the previous one; the illusion of an endless descent
// comes from the camera angle, not the geometry.
type StairConfig struct {
	// StepSize is the footprint width and depth of every step.
	StepSize float64 `yaml:"step_size"`
	// FirstHeight is the height of the first step.
	FirstHeight float64 `yaml:"first_height"`
	// HeightStep is how much taller each successive step is.
	HeightStep float64 `yaml:"height_step"`
	// OriginX, OriginZ places the first step.
	OriginX float64 `yaml:"origin_x"`
	OriginZ float64 `yaml:"origin_z"`
	// FrontLedge is the lip extruded from the first step's front face.
	FrontLedge float64 `yaml:"front_ledge"`
	// Flights lists the straight runs in circuit order.
	Flights []FlightSpec `yaml:"flights"`
}

// DefaultStairs returns the staircase the illusion was authored with: an
// 18-step circuit (1 + 6 + 5 + 4 + 2) starting 20 units tall and growing
// 0.25 units per step.
func DefaultStairs() StairConfig {
	return StairConfig{
		StepSize:    2,
		FirstHeight: 20,
		HeightStep:  0.25,
		OriginX:     -6,
		OriginZ:     4,
		FrontLedge:  0.4,
		Flights: []FlightSpec{
			{DX: 0, DZ: -2, Steps: 6},
			{DX: 2, DZ: 0, Steps: 5},
			{DX: 0, DZ: 2, Steps: 4},
			{DX: -2, DZ: 0, Steps: 2},
		},
	}
}

// Staircase is the generated geometry: the first step plus its flights,
// in climb order.
type Staircase struct {
	First   Step
	Flights []Flight
}

// GenerateStairs builds the staircase described by cfg.
func GenerateStairs(cfg StairConfig) (*Staircase, error) {
	if cfg.StepSize <= 0 {
		return nil, fmt.Errorf("stairloop: step size %v: %w", cfg.StepSize, ErrInvalidInput)
	}
	if cfg.FirstHeight <= 0 {
		return nil, fmt.Errorf("stairloop: first step height %v: %w", cfg.FirstHeight, ErrInvalidInput)
	}
	for i, fl := range cfg.Flights {
		if fl.Steps < 0 {
			return nil, fmt.Errorf("stairloop: flight %d has %d steps: %w", i+1, fl.Steps, ErrInvalidInput)
		}
	}

	x, z := cfg.OriginX, cfg.OriginZ
	height := cfg.FirstHeight

	sc := &Staircase{
		First: Step{
			X: x, Z: z,
			Width: cfg.StepSize, Depth: cfg.StepSize,
			Height:     height,
			FrontLedge: cfg.FrontLedge,
		},
	}
	height += cfg.HeightStep

	for i, spec := range cfg.Flights {
		flight := Flight{Name: fmt.Sprintf("flight_%d", i+1)}
		for s := 0; s < spec.Steps; s++ {
			x += spec.DX
			z += spec.DZ
			flight.Steps = append(flight.Steps, Step{
				X: x, Z: z,
				Width: cfg.StepSize, Depth: cfg.StepSize,
				Height: height,
			})
			height += cfg.HeightStep
		}
		sc.Flights = append(sc.Flights, flight)
	}
	return sc, nil
}

// Steps returns every step in climb order, first step included.
func (sc *Staircase) Steps() []Step {
	steps := make([]Step, 0, sc.NumSteps())
	steps = append(steps, sc.First)
	for _, fl := range sc.Flights {
		steps = append(steps, fl.Steps...)
	}
	return steps
}

// NumSteps returns the total step count.
func (sc *Staircase) NumSteps() int {
	n := 1
	for _, fl := range sc.Flights {
		n += len(fl.Steps)
	}
	return n
}

// TopCenters returns the resting point of a ball of the given radius on each
// step, in climb order. These are the bounce waypoints.
func (sc *Staircase) TopCenters(radius float64) []Point3 {
	steps := sc.Steps()
	points := make([]Point3, len(steps))
	for i, s := range steps {
		points[i] = s.TopCenter(radius)
	}
	return points
}

// WaypointLoop converts a climb-order waypoint list into a seamless
// descending loop: the first point is appended so the path closes, and the
// sequence is reversed so the ball travels downward. The returned slice is a
// copy; points is not modified.
func WaypointLoop(points []Point3) []Point3 {
	loop := make([]Point3, 0, len(points)+1)
	loop = append(loop, points...)
	if len(points) > 0 {
		loop = append(loop, points[0])
	}
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
	return loop
}
