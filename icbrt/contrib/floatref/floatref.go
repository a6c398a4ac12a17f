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

// Package floatref computes integer cube roots through float64 conversion.
//
// It exists as a baseline for benchmarks and as an independent cross-check
// of package icbrt. It is not part of icbrt's contract: the results rely on
// math.Cbrt and need an integer correction step to be exact.
package floatref

import (
	"math"
	"math/bits"
)

// Cbrt64 returns the integer cube root of n using a float64 estimate that is
// then corrected in both directions with exact integer arithmetic.
func Cbrt64(n uint64) uint64 {
	r := uint64(math.Cbrt(float64(n)))
	for r > 0 && !cubeFits(r, n) {
		r--
	}
	for cubeFits(r+1, n) {
		r++
	}
	return r
}

// Cbrt64Naive is the common one-step shortcut: truncate the float estimate and
// step down once if its cube is too large. It is only used for benchmarks,
// since a single downward step does not cover every rounding case.
func Cbrt64Naive(n uint64) uint64 {
	r := uint64(math.Cbrt(float64(n)))
	if cubeFits(r, n) {
		return r
	}
	return r - 1
}

// cubeFits reports whether r*r*r <= n without overflowing.
func cubeFits(r, n uint64) bool {
	hi, sq := bits.Mul64(r, r)
	if hi != 0 {
		return false
	}
	hi, cube := bits.Mul64(sq, r)
	return hi == 0 && cube <= n
}
