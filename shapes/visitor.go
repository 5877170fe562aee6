// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// Visitor is one half of the double-dispatch pair: an operation with
// one entry per concrete shape type.
type Visitor interface {
	VisitCircle(c *Circle)
	VisitSquare(s *Square)
}

// Acceptor is the other half: a shape that routes a visitor to the
// entry for its concrete type.
type Acceptor interface {
	Accept(v Visitor)
}

// Accept routes v to VisitCircle.
func (c *Circle) Accept(v Visitor) { v.VisitCircle(c) }

// Accept routes v to VisitSquare.
func (s *Square) Accept(v Visitor) { v.VisitSquare(s) }

// TranslateVisitor moves whatever shape it visits by a fixed offset.
type TranslateVisitor struct {
	V Vector3D
}

func (t TranslateVisitor) VisitCircle(c *Circle) { c.Center = c.Center.Add(t.V) }

func (t TranslateVisitor) VisitSquare(s *Square) { s.Center = s.Center.Add(t.V) }

// TranslateAccepted applies v to every shape through double dispatch:
// one dynamic call into Accept, one back out into the visitor.
func TranslateAccepted(shapes []Acceptor, v Vector3D) {
	var t Visitor = TranslateVisitor{V: v}
	for _, s := range shapes {
		s.Accept(t)
	}
}
