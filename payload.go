// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import "unsafe"

// The clone and destroy operations are shared by every container
// variant; only the invoke operation depends on the call signature.
// Each operation is a top-level generic function, so taking its
// instantiation as a func value allocates nothing.

// clonePayload placement-copies the payload from src's arena into
// dst's. In Go the payload's copy semantics ARE a value copy, so this
// is the whole clone operation.
func clonePayload[F any](dst, src unsafe.Pointer) {
	*(*F)(dst) = *(*F)(src)
}

// destroyOp selects the destroy operation for payload type F. The
// Destroyer check boxes one value, once, at bind time.
func destroyOp[F any]() func(unsafe.Pointer) {
	var probe F
	if _, ok := any(probe).(Destroyer); ok {
		return destroyPayload[F]
	}
	return dropPayload[F]
}

// destroyPayload runs the payload's Destroy hook, then zeroes it.
func destroyPayload[F any](p unsafe.Pointer) {
	any(*(*F)(p)).(Destroyer).Destroy()
	var zero F
	*(*F)(p) = zero
}

// dropPayload zeroes the payload. Zeroing releases any references held
// in pointer-family storage and leaves no residual state for the next
// bind.
func dropPayload[F any](p unsafe.Pointer) {
	var zero F
	*(*F)(p) = zero
}
