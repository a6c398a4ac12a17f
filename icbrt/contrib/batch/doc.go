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

// Package batch applies integer cube roots to whole slices.
//
// # Slice API
//
//   - Cbrt(src, dst []T) error
//   - CbrtChecked(src, dst []T, ok []bool) int
//   - ParallelCbrt(pool, src, dst []T) error
//   - ParallelCbrtChecked(pool, src, dst []T, ok []bool) int
//   - Cbrt128Slice(src, dst []num.U128)
//
// The functions process as many elements as the shortest slice holds.
// A negative element never stops the operation: its output is 0 and it is
// reported either through ok or as an *IndexError carrying the lowest
// failing index.
//
// # Dispatch
//
// The Parallel* functions use the pool only when it pays off. The decision
// (see Dispatch) is driven by Config, loaded at init from the environment:
//
//	ICBRT_NO_PARALLEL=1     always run serially
//	ICBRT_MIN_PARALLEL=4096 minimum length for the parallel path
//	ICBRT_WORKERS=0         pool size used by NewPool (0 = GOMAXPROCS)
//	ICBRT_BATCH_SIZE=1024   elements per grab in ParallelCbrtChecked
//
// # Example Usage
//
//	pool := batch.NewPool()
//	defer pool.Close()
//
//	roots := make([]uint64, len(values))
//	if err := batch.ParallelCbrt(pool, values, roots); err != nil {
//	    return err
//	}
package batch
