// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// TranslateStrategy is the classic strategy object: the translation
// behavior lives outside the shape, selected per concrete type.
type TranslateStrategy interface {
	TranslateCircle(c *Circle, v Vector3D)
	TranslateSquare(s *Square, v Vector3D)
}

// CenterStrategy is the concrete strategy: move the center.
type CenterStrategy struct{}

func (CenterStrategy) TranslateCircle(c *Circle, v Vector3D) {
	c.Center = c.Center.Add(v)
}

func (CenterStrategy) TranslateSquare(s *Square, v Vector3D) {
	s.Center = s.Center.Add(v)
}

// StrategyCircle delegates translation to its strategy object. Two
// dynamic dispatches per translation: one through Shape, one through
// TranslateStrategy.
type StrategyCircle struct {
	Circle
	Strategy TranslateStrategy
}

// Translate forwards to the strategy.
func (c *StrategyCircle) Translate(v Vector3D) {
	c.Strategy.TranslateCircle(&c.Circle, v)
}

// StrategySquare delegates translation to its strategy object.
type StrategySquare struct {
	Square
	Strategy TranslateStrategy
}

// Translate forwards to the strategy.
func (s *StrategySquare) Translate(v Vector3D) {
	s.Strategy.TranslateSquare(&s.Square, v)
}
