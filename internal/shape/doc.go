// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shape classifies Go types by their word layout with respect to
// the garbage collector.
//
// Layout contract:
// A type is Scalar when none of its words hold references, and Pointers
// when every word holds a reference the collector must scan. The ifn
// storage classes rely on this classification: scalar payloads go into
// GC-opaque storage, pointer payloads into GC-scanned storage. Mixed
// layouts (string, slice, structs combining both) fit neither class and
// are rejected at bind time.
package shape
