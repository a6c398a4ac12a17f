// Copyright 2025 go-icbrt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package icbrt computes exact integer cube roots using only integer arithmetic.
//
// The integer cube root of v is the largest r such that r*r*r <= v. It is
// computed digit by digit in base 8, most significant digit first, the same
// way long division produces a quotient. Every intermediate value fits in
// the input's own type, so no wider type and no floating point is involved.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-icbrt/icbrt"
//
//	r := icbrt.Cbrt(uint64(1_000_000_000_000_000)) // 100000
//
//	if r, ok := icbrt.CbrtChecked(int32(x)); ok {
//	    // x >= 0
//	}
//
// # API
//
// Each entry point comes in up to three forms:
//   - Cbrt: panics on negative input
//   - CbrtChecked: reports negative input with a false second result
//   - CbrtErr: reports negative input as ErrNegativeInput
//
// The generic functions accept every Go integer type (int8 ... int64,
// uint8 ... uint64, int, uint, uintptr). Wider integers have dedicated
// entry points:
//   - Cbrt128, CbrtI128 for github.com/shabbyrobe/go-num U128 and I128
//   - Cbrt256 for github.com/holiman/uint256
//
// Concrete per-type wrappers (CbrtUint8, CbrtInt64Checked, ...) are
// generated by cmd/icbrtgen into zz_cbrt_types.go.
//
// All functions are pure and safe for concurrent use.
package icbrt

//go:generate go run ../cmd/icbrtgen -output zz_cbrt_types.go -pkg icbrt
