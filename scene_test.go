package stairloop

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildSceneDefault(t *testing.T) {
	scene, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	if scene.Frames != 250 {
		t.Errorf("Frames = %d, want 250", scene.Frames)
	}
	if scene.Stairs.NumSteps() != 18 {
		t.Errorf("NumSteps = %d, want 18", scene.Stairs.NumSteps())
	}
	if len(scene.Walls.Walls) != 2 {
		t.Fatalf("%d walls, want 2", len(scene.Walls.Walls))
	}
	if scene.Walls.Walls[0].Name != "left_wall" || scene.Walls.Walls[1].Name != "right_wall" {
		t.Errorf("wall names = %q, %q", scene.Walls.Walls[0].Name, scene.Walls.Walls[1].Name)
	}

	total := len(scene.Walls.Walls[0].Frames) + len(scene.Walls.Walls[1].Frames)
	if total == 0 {
		t.Fatal("no frames hung")
	}
	if len(scene.FrameLights) != total {
		t.Errorf("%d frame lights for %d frames", len(scene.FrameLights), total)
	}

	if !scene.Camera.Locked {
		t.Error("camera is not locked")
	}
	if scene.Ball.Track.LastFrame() != 250 {
		t.Errorf("track last frame = %d, want 250", scene.Ball.Track.LastFrame())
	}

	// The ball starts red and at the loop start: one radius above the first
	// step top, in the rotated world space.
	c, ok := scene.Ball.Track.ColorAt(0)
	if !ok || c != (Color{R: 1}) {
		t.Errorf("start color = %v, %v", c, ok)
	}
	p, ok := scene.Ball.Track.PositionAt(0)
	if !ok {
		t.Fatal("no position at frame 0")
	}
	want := scene.Stairs.Transform.Apply(Point3{X: -6, Y: 21, Z: 4})
	assertPoint(t, "start position", p, want)
}

func TestBuildSceneStairsOrientation(t *testing.T) {
	// The staircase group carries the authored yaw; the walls, floor, and
	// camera were all placed around the rotated stairs, and the ball track is
	// keyed in that world space.
	scene, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	assertNear(t, "group yaw", scene.Stairs.Transform.Rotate.Y, 225)

	first := scene.Stairs.Steps()[0]
	p, ok := scene.Ball.Track.PositionAt(0)
	if !ok {
		t.Fatal("no position at frame 0")
	}
	world := scene.Stairs.Transform.Apply(first.TopCenter(1))
	assertPoint(t, "frame 0 on rotated stairs", p, world)
	// The yaw actually moves the waypoint: local and world must differ.
	if local := first.TopCenter(1); p == local {
		t.Fatalf("ball track ignores the group yaw: %v", p)
	}
}

func TestBuildScenarioMatchesScene(t *testing.T) {
	cfg := DefaultSceneConfig()
	scene, err := BuildScene(cfg)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	sc, err := BuildScenario(cfg)
	if err != nil {
		t.Fatalf("BuildScenario: %v", err)
	}
	baked := sc.Track()
	direct := scene.Ball.Track
	if len(baked.Translations) != len(direct.Translations) {
		t.Fatalf("baked %d translate keys, scene %d", len(baked.Translations), len(direct.Translations))
	}
	for i := range direct.Translations {
		if baked.Translations[i] != direct.Translations[i] {
			t.Fatalf("translate key %d differs: %+v vs %+v", i, baked.Translations[i], direct.Translations[i])
		}
	}
	for i := range direct.Colors {
		if baked.Colors[i] != direct.Colors[i] {
			t.Fatalf("color key %d differs", i)
		}
	}
}

func TestBuildSceneLoopCloses(t *testing.T) {
	scene, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	start, _ := scene.Ball.Track.PositionAt(0)
	end, _ := scene.Ball.Track.PositionAt(scene.Frames)
	assertPoint(t, "loop closure", end, start)
}

func TestBuildSceneDeterministic(t *testing.T) {
	a, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	b, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	for i := range a.Walls.Walls {
		if len(a.Walls.Walls[i].Frames) != len(b.Walls.Walls[i].Frames) {
			t.Fatalf("wall %d frame counts differ", i)
		}
	}
	if len(a.Ball.Track.Colors) != len(b.Ball.Track.Colors) {
		t.Fatalf("color key counts differ")
	}
	for i := range a.Ball.Track.Colors {
		if a.Ball.Track.Colors[i] != b.Ball.Track.Colors[i] {
			t.Fatalf("color key %d differs", i)
		}
	}
}

func TestBuildSceneWallSeedsDiffer(t *testing.T) {
	scene, err := BuildScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	left, right := scene.Walls.Walls[0], scene.Walls.Walls[1]
	if len(left.Frames) == len(right.Frames) {
		same := true
		for i := range left.Frames {
			if left.Frames[i] != right.Frames[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("both walls hung identical frames")
		}
	}
}

func TestBuildSceneInvalid(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.FPS = 0
	if _, err := BuildScene(cfg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero fps: err = %v", err)
	}
	cfg = DefaultSceneConfig()
	cfg.Seconds = -1
	if _, err := BuildScene(cfg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative seconds: err = %v", err)
	}
	cfg = DefaultSceneConfig()
	cfg.BallRadius = 0
	if _, err := BuildScene(cfg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero radius: err = %v", err)
	}
}

func TestLoadSceneConfigDefaults(t *testing.T) {
	cfg, err := LoadSceneConfig(strings.NewReader("seed: 9\nrounding: nearest\n"))
	if err != nil {
		t.Fatalf("LoadSceneConfig: %v", err)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want 9", cfg.Seed)
	}
	if cfg.Rounding != RoundNearest {
		t.Errorf("Rounding = %v, want nearest", cfg.Rounding)
	}
	// Omitted fields keep their defaults.
	if cfg.FPS != 25 || cfg.Seconds != 10 {
		t.Errorf("length = %d fps x %vs", cfg.FPS, cfg.Seconds)
	}
	if cfg.Wall.Size != 67 {
		t.Errorf("wall size = %v, want 67", cfg.Wall.Size)
	}
}

func TestLoadSceneConfigRejectsUnknownFields(t *testing.T) {
	if _, err := LoadSceneConfig(strings.NewReader("sede: 9\n")); err == nil {
		t.Error("typoed field accepted")
	}
}

func TestLoadSceneConfigRejectsBadRounding(t *testing.T) {
	if _, err := LoadSceneConfig(strings.NewReader("rounding: sideways\n")); err == nil {
		t.Error("unknown rounding accepted")
	}
}
