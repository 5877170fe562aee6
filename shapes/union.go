// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// UnionShape is a by-value tagged union of Circle and Square: the
// variant mechanism. A scene of UnionShapes is one contiguous slice
// with no per-shape pointer chasing.
type UnionShape struct {
	tag    Kind
	circle Circle
	square Square
}

// UnionCircle builds a union holding a circle.
func UnionCircle(radius float64) UnionShape {
	return UnionShape{tag: KindCircle, circle: Circle{Radius: radius}}
}

// UnionSquare builds a union holding a square.
func UnionSquare(side float64) UnionShape {
	return UnionShape{tag: KindSquare, square: Square{Side: side}}
}

// Kind returns the active member's tag.
func (u *UnionShape) Kind() Kind {
	return u.tag
}

// Center returns the active member's center.
func (u *UnionShape) Center() Vector3D {
	if u.tag == KindCircle {
		return u.circle.Center
	}
	return u.square.Center
}

// TranslateUnions applies v to every union in place.
func TranslateUnions(shapes []UnionShape, v Vector3D) {
	for i := range shapes {
		u := &shapes[i]
		switch u.tag {
		case KindCircle:
			u.circle.Center = u.circle.Center.Add(v)
		case KindSquare:
			u.square.Center = u.square.Center.Add(v)
		}
	}
}
