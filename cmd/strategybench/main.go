// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Strategybench compares three renditions of the strategy pattern over
// the same seeded scene of circles and squares: a classic interface
// strategy with one heap object per strategy, a plain function value
// field, and an inline callable holding the strategy in-place.
//
// Usage:
//
//	strategybench [-n shapes] [-steps steps] [-seed seed] [-cpuprofile]
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"code.hybscloud.com/ifn/shapes"
)

var (
	n          = flag.Int("n", shapes.DefaultShapes, "number of shapes in the scene")
	steps      = flag.Int("steps", shapes.DefaultSteps, "number of translation steps")
	seed       = flag.Uint64("seed", 1, "seed for the shape and offset stream")
	cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
)

// run builds a scene with the given builder, drives it through the
// translation steps and reports the elapsed seconds.
func run(name string, build func(st *shapes.Stream, n int) []shapes.Shape) {
	st := shapes.NewStream(*seed)
	scene := build(st, *n)

	start := time.Now()
	for s := 0; s < *steps; s++ {
		shapes.TranslateShapes(scene, st.NextOffset())
	}
	seconds := time.Since(start).Seconds()

	fmt.Printf(" %-33s: %vs\n", name+" solution runtime", seconds)
}

func main() {
	flag.Parse()
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	run("Strategy", shapes.BuildStrategyShapes)
	run("Function value", shapes.BuildFuncShapes)
	run("Inline callable", shapes.BuildInlineShapes)
}
