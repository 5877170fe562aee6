// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

import "code.hybscloud.com/ifn"

// CircleStrategy and SquareStrategy are inline callables: the strategy
// payload lives inside the shape itself, one pointer word of capacity,
// no heap box per strategy.
type (
	CircleStrategy = ifn.Proc2[*Circle, Vector3D, ifn.P1]
	SquareStrategy = ifn.Proc2[*Square, Vector3D, ifn.P1]
)

// centerCircle is the stateless inline strategy payload for circles.
type centerCircle struct{}

func (centerCircle) Invoke(c *Circle, v Vector3D) { TranslateCircle(c, v) }

// centerSquare is the stateless inline strategy payload for squares.
type centerSquare struct{}

func (centerSquare) Invoke(s *Square, v Vector3D) { TranslateSquare(s, v) }

// InlineCircle carries its strategy in an inline callable.
type InlineCircle struct {
	Circle
	Strategy CircleStrategy
}

// Translate forwards to the inline strategy.
func (c *InlineCircle) Translate(v Vector3D) {
	c.Strategy.Invoke(&c.Circle, v)
}

// InlineSquare carries its strategy in an inline callable.
type InlineSquare struct {
	Square
	Strategy SquareStrategy
}

// Translate forwards to the inline strategy.
func (s *InlineSquare) Translate(v Vector3D) {
	s.Strategy.Invoke(&s.Square, v)
}

// NewInlineCircle builds an InlineCircle with the default strategy.
func NewInlineCircle(radius float64) *InlineCircle {
	return &InlineCircle{
		Circle:   Circle{Radius: radius},
		Strategy: ifn.BindProc2[ifn.P1, *Circle, Vector3D](centerCircle{}),
	}
}

// NewInlineSquare builds an InlineSquare with the default strategy.
func NewInlineSquare(side float64) *InlineSquare {
	return &InlineSquare{
		Square:   Square{Side: side},
		Strategy: ifn.BindProc2[ifn.P1, *Square, Vector3D](centerSquare{}),
	}
}
