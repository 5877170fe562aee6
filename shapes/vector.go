// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

// Vector3D is a translation offset.
type Vector3D struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and w.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}
