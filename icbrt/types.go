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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed is a constraint for signed integer types, including int.
type Signed interface {
	constraints.Signed
}

// Unsigned is a constraint for unsigned integer types, including uint and uintptr.
type Unsigned interface {
	constraints.Unsigned
}

// Integers is a constraint for every fixed-width integer type Go provides.
// 128- and 256-bit values have their own entry points (see Cbrt128 and Cbrt256).
type Integers interface {
	Signed | Unsigned
}

// BitWidth returns the total number of bits used to represent T.
//
// For example:
//   - int8, uint8: 8
//   - int32, uint32: 32
//   - int, uint, uintptr: 32 or 64 depending on the platform
func BitWidth[T Integers]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}

// topShift returns the largest multiple of 3 that is not above numBits-1.
// The digit loop starts there and walks down to 0, so it runs ceil(numBits/3) times.
func topShift(numBits uint) int {
	return int((numBits - 1) / 3 * 3)
}
