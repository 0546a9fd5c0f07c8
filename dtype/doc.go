// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dtype provides the dtype vocabulary and type promotion rules for
// the Loom ML framework.
//
// # Overview
//
// Every tensor-producing operation picks its output dtype through this
// package. The promotion rules follow a lattice over the concrete dtypes and
// three weak categories standing in for untyped numeric literals, matching
// JAX-style promotion semantics:
//   - unsigned and signed integers meet at the next wider signed type
//   - 64-bit integers promote only through the weak float category
//   - bfloat16 and float16 are unordered siblings below float32
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/dtype"
//
//	func main() {
//	    out, _ := dtype.ResultType("int32", "float32") // "float32"
//	    out, _ = dtype.ResultType("bfloat16", dtype.WeakInt) // "bfloat16"
//	    out, _ = dtype.ResultType() // the configured floatx, "float32"
//	}
//
// The ambient default float dtype is process-wide configuration, read with
// FloatX and changed with SetFloatX. Callers needing isolation from the
// global use ResultTypeWith with an explicit value.
package dtype
