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

import (
	num "github.com/shabbyrobe/go-num"
)

// This file provides the 128-bit entry points. Go has no native 128-bit
// integers, so the same digit loop runs on go-num's U128 value type.

// Width128 is the bit width of U128 and I128.
const Width128 = 128

var (
	u128One   = num.U128From64(1)
	u128Three = num.U128From64(3)
	i128Zero  = num.I128From64(0)
)

// Cbrt128 returns the integer cube root of an unsigned 128-bit value.
func Cbrt128(v num.U128) num.U128 {
	if v.IsZero() {
		return v
	}
	return cbrtDigits128(v)
}

// Cbrt128Checked exists for symmetry with CbrtChecked; it always reports true.
func Cbrt128Checked(v num.U128) (num.U128, bool) {
	return Cbrt128(v), true
}

// CbrtI128 returns the integer cube root of a signed 128-bit value.
// It panics if v is negative.
func CbrtI128(v num.I128) num.I128 {
	r, ok := CbrtI128Checked(v)
	if !ok {
		panic(ErrNegativeInput.Error())
	}
	return r
}

// CbrtI128Checked returns the integer cube root of v and true, or zero and
// false if v is negative.
func CbrtI128Checked(v num.I128) (num.I128, bool) {
	switch c := v.Cmp(i128Zero); {
	case c < 0:
		return i128Zero, false
	case c == 0:
		return i128Zero, true
	}
	// v > 0, so its bit pattern is the same value read as unsigned.
	return cbrtDigits128(v.AsU128()).AsI128(), true
}

func cbrtDigits128(v num.U128) num.U128 {
	x := v
	var r num.U128
	for s := topShift(Width128); s >= 0; s -= 3 {
		r = r.Add(r)
		b := u128Three.Mul(r).Mul(r.Add(u128One)).Add(u128One)
		if x.Rsh(uint(s)).Cmp(b) >= 0 {
			x = x.Sub(b.Lsh(uint(s)))
			r = r.Add(u128One)
		}
	}
	return r
}
