// Package stairloop procedurally generates an "impossible staircase" scene:
// a Penrose-style staircase illusion, picture-frame-covered walls, a floor,
// lights, a locked camera, and a bouncing ball whose animation loops
// seamlessly down the stairs forever.
//
// The package produces plain values — no renderer, file format, or scene
// graph is assumed. A scene host (a game engine, a DCC bridge, an exporter)
// consumes the values and performs all side effects. The ebiten-based
// renderer in examples/preview is one such host.
//
// # Quick start
//
//	scene, err := stairloop.BuildScene(stairloop.DefaultSceneConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, step := range scene.Stairs.Steps() {
//		// instantiate step geometry ...
//	}
//	pos, _ := scene.Ball.Track.PositionAt(frame)
//
// # Core pieces
//
// [Animator] converts an ordered waypoint list into per-frame motion samples
// for a bouncing object: parabolic bounce arcs between waypoints, squash and
// stretch scaling, and a color change at every landing. Samples are produced
// lazily via [Animator.All] or replayed into any [Keyframer].
//
// [Packer] places randomly sized axis-aligned rectangles inside a bounded
// region without overlaps, using bounded-attempt rejection sampling. It backs
// [BuildWall], which hangs picture frames on a wall the way a person would:
// try a spot, and if it collides, try somewhere else.
//
// Both components take explicit seeds, so a scene built twice from the same
// [SceneConfig] is identical.
package stairloop
