// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// TranslateCircle is the free-function translation for circles, bound
// into func-valued and inline strategies.
func TranslateCircle(c *Circle, v Vector3D) {
	c.Center = c.Center.Add(v)
}

// TranslateSquare is the free-function translation for squares.
func TranslateSquare(s *Square, v Vector3D) {
	s.Center = s.Center.Add(v)
}

// FuncCircle carries its strategy as a plain func value. A capturing
// strategy would be a closure, boxed on the heap when created.
type FuncCircle struct {
	Circle
	Strategy func(*Circle, Vector3D)
}

// Translate forwards to the func value.
func (c *FuncCircle) Translate(v Vector3D) {
	c.Strategy(&c.Circle, v)
}

// FuncSquare carries its strategy as a plain func value.
type FuncSquare struct {
	Square
	Strategy func(*Square, Vector3D)
}

// Translate forwards to the func value.
func (s *FuncSquare) Translate(v Vector3D) {
	s.Strategy(&s.Square, v)
}
