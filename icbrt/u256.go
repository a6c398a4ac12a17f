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

import "github.com/holiman/uint256"

// Width256 is the bit width of uint256.Int.
const Width256 = 256

// Cbrt256 returns the integer cube root of v as a newly allocated value.
// v is not modified.
func Cbrt256(v *uint256.Int) *uint256.Int {
	r := new(uint256.Int)
	if v.IsZero() {
		return r
	}

	one := uint256.NewInt(1)
	three := uint256.NewInt(3)
	x := new(uint256.Int).Set(v)

	// Scratch values, reused across iterations.
	b := new(uint256.Int)
	t := new(uint256.Int)
	for s := topShift(Width256); s >= 0; s -= 3 {
		r.Add(r, r)
		t.Add(r, one)
		b.Mul(three, r)
		b.Mul(b, t)
		b.Add(b, one)
		t.Rsh(x, uint(s))
		if !t.Lt(b) {
			t.Lsh(b, uint(s))
			x.Sub(x, t)
			r.Add(r, one)
		}
	}
	return r
}
