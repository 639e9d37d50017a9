package stairloop

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// scenarioVersion is bumped when the scenario layout changes incompatibly.
const scenarioVersion = "1"

// Scenario is the baked ball animation in a host-neutral file form: one key
// per frame, with color listed only on frames where it changes. Scene hosts
// that cannot link against this package can consume the YAML instead.
type Scenario struct {
	Version string        `yaml:"version"`
	FPS     int           `yaml:"fps"`
	Frames  int           `yaml:"frames"`
	Keys    []ScenarioKey `yaml:"keys"`
}

// ScenarioKey is one frame of the baked animation.
type ScenarioKey struct {
	Frame    int         `yaml:"frame"`
	Position [3]float64  `yaml:"pos,flow"`
	Scale    [3]float64  `yaml:"scale,flow"`
	Color    *[3]float64 `yaml:"color,omitempty,flow"`
}

// Scenario bakes the animator's samples into a Scenario at the given fps.
func (a *Animator) Scenario(fps int) *Scenario {
	sc := &Scenario{
		Version: scenarioVersion,
		FPS:     fps,
		Frames:  a.frames,
	}
	for s := range a.All() {
		key := ScenarioKey{
			Frame:    s.Frame,
			Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
			Scale:    [3]float64{s.ScaleH, s.ScaleV, s.ScaleH},
		}
		if s.Frame == 0 || s.Landing {
			key.Color = &[3]float64{s.Color.R, s.Color.G, s.Color.B}
		}
		sc.Keys = append(sc.Keys, key)
	}
	return sc
}

// WriteScenario encodes sc as YAML.
func WriteScenario(w io.Writer, sc *Scenario) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("stairloop: encode scenario: %w", err)
	}
	return enc.Close()
}

// ReadScenario decodes a YAML scenario and checks its version.
func ReadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("stairloop: decode scenario: %w", err)
	}
	if sc.Version != scenarioVersion {
		return nil, fmt.Errorf("stairloop: scenario version %q, want %q: %w", sc.Version, scenarioVersion, ErrInvalidInput)
	}
	return &sc, nil
}

// Track converts the scenario back into an in-memory keyframe track.
func (sc *Scenario) Track() *Track {
	t := NewTrack()
	for _, k := range sc.Keys {
		t.SetTranslate(k.Frame, Point3{X: k.Position[0], Y: k.Position[1], Z: k.Position[2]})
		t.SetScale(k.Frame, k.Scale[0], k.Scale[1], k.Scale[2])
		if k.Color != nil {
			t.SetColor(k.Frame, Color{R: k.Color[0], G: k.Color[1], B: k.Color[2]})
		}
	}
	return t
}
