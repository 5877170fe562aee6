// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

import "math/rand/v2"

// Scene dimensions of the reference runs.
const (
	// DefaultShapes is the scene size.
	DefaultShapes = 100
	// DefaultSteps is the number of translation passes per solution.
	DefaultSteps = 2_500_000
)

// Stream is the deterministic draw sequence behind scene construction
// and translation steps. Every Build function consumes the stream the
// same way — one kind draw and one size draw per shape — so builders
// given equal seeds produce numerically identical scenes, and equal
// step sequences keep them identical.
type Stream struct {
	rng *rand.Rand
}

// NewStream returns a stream seeded with seed.
func NewStream(seed uint64) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NextShape draws one shape: whether it is a circle, and its size.
func (s *Stream) NextShape() (circle bool, size float64) {
	return s.rng.Float64() < 0.5, s.rng.Float64()
}

// NextOffset draws the translation vector of one pass. The Z component
// stays zero: translations move shapes in the plane.
func (s *Stream) NextOffset() Vector3D {
	return Vector3D{X: s.rng.Float64(), Y: s.rng.Float64()}
}

// BuildShapes builds a scene for interface dispatch.
func BuildShapes(st *Stream, n int) []Shape {
	scene := make([]Shape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, &Circle{Radius: size})
		} else {
			scene = append(scene, &Square{Side: size})
		}
	}
	return scene
}

// BuildStrategyShapes builds a scene of shapes delegating to strategy
// objects. All shapes share one stateless strategy value.
func BuildStrategyShapes(st *Stream, n int) []Shape {
	var strategy TranslateStrategy = CenterStrategy{}
	scene := make([]Shape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, &StrategyCircle{Circle: Circle{Radius: size}, Strategy: strategy})
		} else {
			scene = append(scene, &StrategySquare{Square: Square{Side: size}, Strategy: strategy})
		}
	}
	return scene
}

// BuildFuncShapes builds a scene of shapes with func-valued strategies.
func BuildFuncShapes(st *Stream, n int) []Shape {
	scene := make([]Shape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, &FuncCircle{Circle: Circle{Radius: size}, Strategy: TranslateCircle})
		} else {
			scene = append(scene, &FuncSquare{Square: Square{Side: size}, Strategy: TranslateSquare})
		}
	}
	return scene
}

// BuildInlineShapes builds a scene of shapes with inline-callable
// strategies.
func BuildInlineShapes(st *Stream, n int) []Shape {
	scene := make([]Shape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, NewInlineCircle(size))
		} else {
			scene = append(scene, NewInlineSquare(size))
		}
	}
	return scene
}

// BuildTagged builds a scene for tag-switch dispatch.
func BuildTagged(st *Stream, n int) []TaggedShape {
	scene := make([]TaggedShape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, NewTaggedCircle(size))
		} else {
			scene = append(scene, NewTaggedSquare(size))
		}
	}
	return scene
}

// BuildAccepted builds a scene for visitor double dispatch.
func BuildAccepted(st *Stream, n int) []Acceptor {
	scene := make([]Acceptor, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, &Circle{Radius: size})
		} else {
			scene = append(scene, &Square{Side: size})
		}
	}
	return scene
}

// BuildUnions builds a scene of by-value tagged unions.
func BuildUnions(st *Stream, n int) []UnionShape {
	scene := make([]UnionShape, 0, n)
	for range n {
		if circle, size := st.NextShape(); circle {
			scene = append(scene, UnionCircle(size))
		} else {
			scene = append(scene, UnionSquare(size))
		}
	}
	return scene
}
