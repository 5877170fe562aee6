// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// Kind tags a shape's concrete type for switch-based dispatch.
type Kind uint8

const (
	// KindCircle tags a circle.
	KindCircle Kind = iota
	// KindSquare tags a square.
	KindSquare
)

// TaggedShape pairs a tag with the concrete shape it selects. Only the
// tagged member is set.
type TaggedShape struct {
	Kind   Kind
	Circle *Circle
	Square *Square
}

// NewTaggedCircle builds a tagged circle.
func NewTaggedCircle(radius float64) TaggedShape {
	return TaggedShape{Kind: KindCircle, Circle: &Circle{Radius: radius}}
}

// NewTaggedSquare builds a tagged square.
func NewTaggedSquare(side float64) TaggedShape {
	return TaggedShape{Kind: KindSquare, Square: &Square{Side: side}}
}

// TranslateTagged applies v to every shape by switching on the tag.
func TranslateTagged(shapes []TaggedShape, v Vector3D) {
	for i := range shapes {
		switch shapes[i].Kind {
		case KindCircle:
			TranslateCircle(shapes[i].Circle, v)
		case KindSquare:
			TranslateSquare(shapes[i].Square, v)
		}
	}
}
