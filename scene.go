package stairloop

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SceneConfig is the top-level recipe for a scene. Load one from YAML with
// LoadSceneConfig or start from DefaultSceneConfig.
type SceneConfig struct {
	// Seed drives every random decision: frame sizes and placement, portrait
	// picks, landing colors. Equal configs build identical scenes.
	Seed uint64 `yaml:"seed"`
	// FPS and Seconds set the animation length: FPS*Seconds frames.
	FPS     int     `yaml:"fps"`
	Seconds float64 `yaml:"seconds"`
	// BallRadius is the bouncing ball's radius; it also sets how far above
	// each step top the waypoints sit.
	BallRadius float64       `yaml:"ball_radius"`
	Bounce     BounceConfig  `yaml:"bounce"`
	Rounding   FrameRounding `yaml:"rounding"`
	Stairs     StairConfig   `yaml:"stairs"`
	Wall       WallConfig    `yaml:"wall"`
}

// DefaultSceneConfig returns the authored scene: 25 fps for 10 seconds,
// bounce height 5, the 18-step staircase, and two 67-unit walls.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Seed:       1,
		FPS:        25,
		Seconds:    10,
		BallRadius: 1,
		Bounce:     BounceConfig{Height: 5, Steepness: 4, Squash: 0.3},
		Stairs:     DefaultStairs(),
		Wall:       DefaultWall(),
	}
}

// LoadSceneConfig reads a YAML scene config, applying defaults for omitted
// fields. Unknown fields are rejected.
func LoadSceneConfig(r io.Reader) (SceneConfig, error) {
	cfg := DefaultSceneConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("stairloop: parse scene config: %w", err)
	}
	return cfg, nil
}

// MarshalYAML encodes the rounding policy as a readable string.
func (r FrameRounding) MarshalYAML() (any, error) {
	switch r {
	case RoundTruncate:
		return "truncate", nil
	case RoundNearest:
		return "nearest", nil
	}
	return nil, fmt.Errorf("stairloop: unknown rounding policy %d", r)
}

// UnmarshalYAML decodes "truncate" or "nearest".
func (r *FrameRounding) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "truncate", "":
		*r = RoundTruncate
	case "nearest":
		*r = RoundNearest
	default:
		return fmt.Errorf("stairloop: unknown rounding policy %q", s)
	}
	return nil
}

// Floor is the large slab under the staircase.
type Floor struct {
	Width     float64
	Depth     float64
	Thickness float64
	Transform Transform
}

// Material is a minimal emissive material description for the scene host.
type Material struct {
	Name      string
	Emission  Color
	Intensity float64
}

// Ball is the animated ball: geometry, baked keyframe track, and its
// emissive material.
type Ball struct {
	Radius   float64
	Track    *Track
	Material Material
}

// WallGroup places the two framed walls behind the staircase as a unit.
type WallGroup struct {
	Transform Transform
	Walls     []*Wall
}

// StairGroup orients the staircase in world space. The walls, floor, and
// camera were all authored around the rotated staircase, so the group yaw is
// part of the composition, not decoration.
type StairGroup struct {
	Transform Transform
	*Staircase
}

// WorldTopCenters returns the bounce waypoints in world space: the resting
// point of a ball of the given radius on each step, carried through the
// group transform.
func (g StairGroup) WorldTopCenters(radius float64) []Point3 {
	points := g.TopCenters(radius)
	for i, p := range points {
		points[i] = g.Transform.Apply(p)
	}
	return points
}

// Scene is a complete generated scene description.
type Scene struct {
	Stairs        StairGroup
	Walls         WallGroup
	Floor         Floor
	Area          AreaLight
	FrameLights   []PointLight
	FrameMaterial Material
	Camera        Camera
	Ball          Ball
	// Frames is the animation length; the ball track loops seamlessly when
	// played from 0 to Frames.
	Frames int
}

// Authored wall and floor placement. The odd rotations are deliberate: the
// right wall is skewed a fraction off square to reinforce the illusion.
var (
	stairGroupTransform = Transform{
		Rotate: Point3{Y: 225},
	}
	leftWallTransform = Transform{
		Translate: Point3{X: -10.571, Y: -33, Z: 42.109},
		Rotate:    Point3{Y: 180},
	}
	rightWallTransform = Transform{
		Translate: Point3{X: -42.995, Y: -33, Z: 8.603},
		Rotate:    Point3{Y: 89.478},
	}
	wallGroupTransform = Transform{
		Translate: Point3{X: 11.637219585894766, Y: 0, Z: -32.82290721133882},
		Rotate:    Point3{Y: -131.41189034927982},
	}
	floorTransform = Transform{
		Translate: Point3{X: 0, Y: -33, Z: 7},
		Rotate:    Point3{Y: 48},
	}
)

// BuildScene generates the whole scene from cfg: staircase, two framed
// walls, floor, lights, camera, and the baked ball animation.
func BuildScene(cfg SceneConfig) (*Scene, error) {
	if cfg.FPS <= 0 || cfg.Seconds <= 0 {
		return nil, fmt.Errorf("stairloop: animation length %d fps x %vs: %w", cfg.FPS, cfg.Seconds, ErrInvalidInput)
	}
	if cfg.BallRadius <= 0 {
		return nil, fmt.Errorf("stairloop: ball radius %v: %w", cfg.BallRadius, ErrInvalidInput)
	}

	generated, err := GenerateStairs(cfg.Stairs)
	if err != nil {
		return nil, err
	}
	stairs := StairGroup{Transform: stairGroupTransform, Staircase: generated}

	// The two walls are independent packing runs; build them concurrently.
	walls := make([]*Wall, 2)
	var g errgroup.Group
	g.Go(func() error {
		w, err := BuildWall("left_wall", leftWallTransform, cfg.Wall, cfg.Seed)
		walls[0] = w
		return err
	})
	g.Go(func() error {
		w, err := BuildWall("right_wall", rightWallTransform, cfg.Wall, cfg.Seed+2)
		walls[1] = w
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	anim, err := ballAnimator(cfg, stairs)
	if err != nil {
		return nil, err
	}
	frames := anim.Frames()
	track := NewTrack()
	anim.Apply(track)

	var frameLights []PointLight
	for _, w := range walls {
		frameLights = append(frameLights, WallFrameLights(w)...)
	}

	return &Scene{
		Stairs: stairs,
		Walls:  WallGroup{Transform: wallGroupTransform, Walls: walls},
		Floor: Floor{
			Width:     120,
			Depth:     120,
			Thickness: 0.2,
			Transform: floorTransform,
		},
		Area:        DefaultAreaLight(),
		FrameLights: frameLights,
		FrameMaterial: Material{
			Name:      "frame_emissive",
			Emission:  Color{R: 0.6, G: 0.8, B: 1.0},
			Intensity: 5,
		},
		Camera: DefaultCamera(),
		Ball: Ball{
			Radius: cfg.BallRadius,
			Track:  track,
			Material: Material{
				Name:      "ball_emissive",
				Emission:  Color{R: 1},
				Intensity: 10,
			},
		},
		Frames: frames,
	}, nil
}

// ballAnimator builds the ball's bounce animator for cfg. The ball is keyed
// in world space, so its waypoints carry the staircase group yaw.
func ballAnimator(cfg SceneConfig, stairs StairGroup) (*Animator, error) {
	return NewAnimator(AnimatorConfig{
		Waypoints:  WaypointLoop(stairs.WorldTopCenters(cfg.BallRadius)),
		Frames:     int(float64(cfg.FPS) * cfg.Seconds),
		Bounce:     cfg.Bounce,
		StartColor: Color{R: 1}, // the ball starts red
		Colors:     NewRandomColors(cfg.Seed),
		Rounding:   cfg.Rounding,
	})
}

// BuildScenario bakes just the ball animation for cfg, skipping walls and
// lights, for hosts that consume the scenario file instead of the package.
// The baked keys match the track a full BuildScene produces.
func BuildScenario(cfg SceneConfig) (*Scenario, error) {
	if cfg.FPS <= 0 || cfg.Seconds <= 0 {
		return nil, fmt.Errorf("stairloop: animation length %d fps x %vs: %w", cfg.FPS, cfg.Seconds, ErrInvalidInput)
	}
	if cfg.BallRadius <= 0 {
		return nil, fmt.Errorf("stairloop: ball radius %v: %w", cfg.BallRadius, ErrInvalidInput)
	}
	generated, err := GenerateStairs(cfg.Stairs)
	if err != nil {
		return nil, err
	}
	anim, err := ballAnimator(cfg, StairGroup{Transform: stairGroupTransform, Staircase: generated})
	if err != nil {
		return nil, err
	}
	return anim.Scenario(cfg.FPS), nil
}
