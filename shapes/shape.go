// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// Shape is the interface-dispatch mechanism: each concrete shape knows
// how to translate itself, and the scene loop calls through the
// interface method table.
type Shape interface {
	Translate(v Vector3D)
}

// Circle is the first concrete shape. The wrapper types of the other
// mechanisms embed it, so all variants move the same data.
type Circle struct {
	Radius float64
	Center Vector3D
}

// Translate moves the circle's center by v.
func (c *Circle) Translate(v Vector3D) {
	c.Center = c.Center.Add(v)
}

// Square is the second concrete shape.
type Square struct {
	Side   float64
	Center Vector3D
}

// Translate moves the square's center by v.
func (s *Square) Translate(v Vector3D) {
	s.Center = s.Center.Add(v)
}

// TranslateShapes applies v to every shape through interface dispatch.
func TranslateShapes(shapes []Shape, v Vector3D) {
	for _, s := range shapes {
		s.Translate(v)
	}
}
