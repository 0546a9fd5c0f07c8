// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package policy provides dtype policies for the Loom ML framework.
//
// A dtype policy bundles the compute and variable storage precision used by a
// layer or variable. Float policies cover uniform and mixed precision
// ("float32", "mixed_float16", "mixed_bfloat16"); quantized policies add an
// integer or float8 quantization mode on top of a source float policy
// ("int8_from_mixed_bfloat16").
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/policy"
//
//	func main() {
//	    p, _ := policy.Get("mixed_float16")
//	    _ = p.ComputeDType()  // "float16"
//	    _ = p.VariableDType() // "float32"
//
//	    q, _ := policy.Get("int8_from_float32")
//	    _ = q.(*policy.QuantizedDTypePolicy).QuantizationMode() // "int8"
//	}
package policy
