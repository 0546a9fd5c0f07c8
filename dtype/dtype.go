// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dtype

import (
	"github.com/loom-ml/loom/internal/config"
	"github.com/loom-ml/loom/internal/dtype"
)

// Type aliases for public API

// DataType represents the underlying element type of a tensor.
type DataType = dtype.DataType

// Data type constants.
const (
	Bool       DataType = dtype.Bool
	Uint8      DataType = dtype.Uint8
	Uint16     DataType = dtype.Uint16
	Uint32     DataType = dtype.Uint32
	Uint64     DataType = dtype.Uint64
	Int8       DataType = dtype.Int8
	Int16      DataType = dtype.Int16
	Int32      DataType = dtype.Int32
	Int64      DataType = dtype.Int64
	Float16    DataType = dtype.Float16
	BFloat16   DataType = dtype.BFloat16
	Float32    DataType = dtype.Float32
	Float64    DataType = dtype.Float64
	Complex64  DataType = dtype.Complex64
	Complex128 DataType = dtype.Complex128
)

// WeakType marks an operand whose dtype comes from an untyped numeric literal.
type WeakType = dtype.WeakType

// Weak markers.
const (
	WeakInt   WeakType = dtype.WeakInt
	WeakFloat WeakType = dtype.WeakFloat
)

// Errors returned by promotion and standardization.
var (
	ErrInvalidDType     = dtype.ErrInvalidDType
	ErrNoPromotionPath  = dtype.ErrNoPromotionPath
	ErrCycleDetected    = dtype.ErrCycleDetected
	ErrIllFormedLattice = dtype.ErrIllFormedLattice
	ErrInvalidArgument  = dtype.ErrInvalidArgument
)

// Promotion functions

// ResultType returns the dtype produced by combining the given values under
// the framework's type promotion rules. Each value may be a dtype name
// string, a DataType, a weak marker, or nil for the configured floatx.
//
// Example:
//
//	out, err := dtype.ResultType("int64", "float64")  // "float64"
//	out, err = dtype.ResultType(dtype.WeakInt, dtype.WeakInt)  // "int32" under floatx float32
func ResultType(values ...any) (string, error) {
	return dtype.ResultType(values...)
}

// ResultTypeWith is ResultType with an explicit default float dtype in place
// of the process-wide floatx setting.
func ResultTypeWith(floatx string, values ...any) (string, error) {
	return dtype.ResultTypeWith(floatx, values...)
}

// Standardize normalizes a dtype-like value into a canonical vocabulary name.
func Standardize(value any) (string, error) {
	return dtype.Standardize(value)
}

// Vocabulary functions

// AllowedDTypes returns the sorted list of canonical dtype names.
func AllowedDTypes() []string {
	return dtype.AllowedDTypes()
}

// IsAllowed reports whether name is a canonical dtype name.
func IsAllowed(name string) bool {
	return dtype.IsAllowed(name)
}

// ParseDataType returns the DataType named by s.
func ParseDataType(s string) (DataType, error) {
	return dtype.ParseDataType(s)
}

// DowncastTo32 returns the 32-bit counterpart of a 64-bit dtype name.
func DowncastTo32(dt string) (string, bool) {
	return dtype.DowncastTo32(dt)
}

// DowncastTo16 returns the 16-bit counterpart of a 32- or 64-bit dtype name.
func DowncastTo16(dt string) (string, bool) {
	return dtype.DowncastTo16(dt)
}

// Ambient configuration

// FloatX returns the process-wide default float dtype.
func FloatX() string {
	return config.FloatX()
}

// SetFloatX sets the process-wide default float dtype. Valid values are
// "bfloat16", "float16", "float32" and "float64".
func SetFloatX(value string) error {
	return config.SetFloatX(value)
}

// Epsilon returns the numeric fuzz factor.
func Epsilon() float64 {
	return config.Epsilon()
}

// SetEpsilon sets the numeric fuzz factor.
func SetEpsilon(value float64) {
	config.SetEpsilon(value)
}
