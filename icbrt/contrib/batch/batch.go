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

package batch

import (
	"fmt"

	"github.com/ajroetker/go-icbrt/icbrt"
	"github.com/ajroetker/go-icbrt/icbrt/contrib/workerpool"
	num "github.com/shabbyrobe/go-num"
)

// IndexError reports the position of the element a slice operation failed on.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Cbrt writes the integer cube root of each element of src into dst.
// It processes min(len(src), len(dst)) elements.
//
// Negative elements write 0. If any element is negative, Cbrt still
// processes the whole input and returns an *IndexError for the lowest
// negative index, wrapping icbrt.ErrNegativeInput.
func Cbrt[T icbrt.Integers](src, dst []T) error {
	n := min(len(src), len(dst))
	return negativeAt(cbrtRange(src, dst, 0, n))
}

// CbrtChecked writes the integer cube root of each element of src into dst
// and whether it succeeded into ok. It processes
// min(len(src), len(dst), len(ok)) elements and returns how many failed.
func CbrtChecked[T icbrt.Integers](src, dst []T, ok []bool) int {
	n := min(len(src), len(dst), len(ok))
	return cbrtCheckedRange(src, dst, ok, 0, n)
}

// ParallelCbrt is Cbrt split across pool. Small inputs, a nil or closed
// pool, or ICBRT_NO_PARALLEL run serially (see Dispatch).
func ParallelCbrt[T icbrt.Integers](pool *workerpool.Pool, src, dst []T) error {
	n := min(len(src), len(dst))
	if Dispatch(pool, n) == DispatchSerial {
		return negativeAt(cbrtRange(src, dst, 0, n))
	}

	return negativeAt(pool.ParallelForFirst(n, func(start, end int) int {
		return cbrtRange(src, dst, start, end)
	}))
}

// ParallelCbrtChecked is CbrtChecked split across pool in batches of
// Config.BatchSize.
func ParallelCbrtChecked[T icbrt.Integers](pool *workerpool.Pool, src, dst []T, ok []bool) int {
	n := min(len(src), len(dst), len(ok))
	if Dispatch(pool, n) == DispatchSerial {
		return cbrtCheckedRange(src, dst, ok, 0, n)
	}

	return pool.ParallelForCount(n, CurrentConfig().BatchSize, func(start, end int) int {
		return cbrtCheckedRange(src, dst, ok, start, end)
	})
}

// Cbrt128Slice writes the integer cube root of each element of src into dst.
// It processes min(len(src), len(dst)) elements.
func Cbrt128Slice(src, dst []num.U128) {
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = icbrt.Cbrt128(src[i])
	}
}

// cbrtRange fills dst[start:end] and returns the first negative index in
// the range, or -1.
func cbrtRange[T icbrt.Integers](src, dst []T, start, end int) int {
	firstNeg := -1
	for i := start; i < end; i++ {
		r, ok := icbrt.CbrtChecked(src[i])
		if !ok && firstNeg < 0 {
			firstNeg = i
		}
		dst[i] = r
	}
	return firstNeg
}

func cbrtCheckedRange[T icbrt.Integers](src, dst []T, ok []bool, start, end int) int {
	failed := 0
	for i := start; i < end; i++ {
		dst[i], ok[i] = icbrt.CbrtChecked(src[i])
		if !ok[i] {
			failed++
		}
	}
	return failed
}

func negativeAt(i int) error {
	if i < 0 {
		return nil
	}
	return &IndexError{Index: i, Err: icbrt.ErrNegativeInput}
}
