// Package windfarm is an animated 2D scene of rotating windmills, drifting
// clouds and a sun or moon, driven by a fixed-rate tick and single-key
// commands.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an [Ebitengine]
// window and drives the loop for you:
//
//	cfg := windfarm.DefaultConfig()
//	app := windfarm.NewApp(cfg)
//	if err := windfarm.Run(app); err != nil {
//		log.Fatal(err)
//	}
//
// Front-ends that own their own loop call the four [App] callbacks
// directly: [App.Tick] at the configured rate, [App.Display] once per
// frame with a [Surface], [App.Reshape] on resize and [App.Keyboard] for
// each typed character. The snapshot and term subpackages are two such
// front-ends.
//
// # Scene
//
// A [Scene] owns every [Entity] in one ordered list and keeps per-kind
// index views over it. Entities are updated and drawn in insertion order:
//
//	scene := windfarm.NewScene(nil)
//	scene.AddWindmill(-250, -200, windfarm.DefaultWindmillShape)
//	scene.AddCloud(windfarm.NewCloud(0, 250, 0.3, 25))
//	scene.UpdateAll(windfarm.DefaultMode())
//
// # Drawing
//
// Entities draw through a [Canvas] in world coordinates (x in [-500, 500],
// y in [-350, 350], Y up). [Painter] implements Canvas with a transform
// stack and projects into pixel space for a [Surface] backend.
//
// # Keys
//
//	1-5  select windmill       +/-  speed up/down
//	d/n  day/night             c/w  add cloud/windmill
//	s    toggle sun animation  p    pause
//	r    reset                 q    quit (also Esc)
//
// [Ebitengine]: https://ebitengine.org
package windfarm
