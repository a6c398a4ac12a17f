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

package icbrt

import "errors"

// ErrNegativeInput is returned by the error-returning variants when the
// argument is below zero. The integer cube root is only defined for v >= 0.
var ErrNegativeInput = errors.New("cannot calculate cube root of negative number")

// Cbrt returns the integer cube root of v: the largest r such that r*r*r <= v.
//
// Cbrt panics if v is negative. Use CbrtChecked or CbrtErr when the sign of
// the input is not known in advance.
//
// Example:
//
//	icbrt.Cbrt(uint8(8))          // 2
//	icbrt.Cbrt(uint64(1e15))      // 100000
//	icbrt.Cbrt(int64(-1))         // panics
func Cbrt[T Integers](v T) T {
	r, ok := CbrtChecked(v)
	if !ok {
		panic(ErrNegativeInput.Error())
	}
	return r
}

// CbrtChecked returns the integer cube root of v and true, or 0 and false if v
// is negative. It never fails for unsigned types.
func CbrtChecked[T Integers](v T) (T, bool) {
	switch {
	case v < 0:
		return 0, false
	case v == 0:
		return 0, true
	}
	return cbrtDigits(v, BitWidth[T]()), true
}

// CbrtErr is like CbrtChecked but reports negative input as ErrNegativeInput.
func CbrtErr[T Integers](v T) (T, error) {
	r, ok := CbrtChecked(v)
	if !ok {
		return 0, ErrNegativeInput
	}
	return r, nil
}

// cbrtDigits computes the cube root of a non-negative v one base-8 digit at a
// time, most significant digit first. numBits is the width of T.
//
// Every intermediate stays within T: the running result never exceeds
// Cbrt(MaxT), so b = 3*r*(r+1)+1 stays well below MaxT, and b<<s is only
// formed when b <= x>>s, which keeps it at or below x.
func cbrtDigits[T Integers](v T, numBits uint) T {
	const three = 3
	x := v
	var r T
	for s := topShift(numBits); s >= 0; s -= 3 {
		r += r
		b := three*r*(r+1) + 1
		if x>>s >= b {
			x -= b << s
			r++
		}
	}
	return r
}
