// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Visitorbench compares four ways to dispatch over a closed set of
// shape kinds: an enum tag with a switch, interface method dispatch,
// the classic visitor pattern, and an in-place tagged union.
//
// Usage:
//
//	visitorbench [-n shapes] [-steps steps] [-seed seed] [-cpuprofile]
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

// run builds a scene through setup, then times steps translations of
// it. Scene construction stays outside the timed region.
func run(name string, setup func(st *shapes.Stream) func(v shapes.Vector3D)) {
	st := shapes.NewStream(*seed)
	step := setup(st)

	start := time.Now()
	for s := 0; s < *steps; s++ {
		step(st.NextOffset())
	}
	seconds := time.Since(start).Seconds()

	fmt.Printf(" %-31s: %vs\n", name+" solution runtime", seconds)
}

func main() {
	flag.Parse()
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	run("Enum", func(st *shapes.Stream) func(v shapes.Vector3D) {
		scene := shapes.BuildTagged(st, *n)
		return func(v shapes.Vector3D) { shapes.TranslateTagged(scene, v) }
	})
	run("Interface", func(st *shapes.Stream) func(v shapes.Vector3D) {
		scene := shapes.BuildShapes(st, *n)
		return func(v shapes.Vector3D) { shapes.TranslateShapes(scene, v) }
	})
	run("Visitor", func(st *shapes.Stream) func(v shapes.Vector3D) {
		scene := shapes.BuildAccepted(st, *n)
		return func(v shapes.Vector3D) { shapes.TranslateAccepted(scene, v) }
	})
	run("Union", func(st *shapes.Stream) func(v shapes.Vector3D) {
		scene := shapes.BuildUnions(st, *n)
		return func(v shapes.Vector3D) { shapes.TranslateUnions(scene, v) }
	})
}
