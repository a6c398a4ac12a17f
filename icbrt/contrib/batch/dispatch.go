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

import "github.com/ajroetker/go-icbrt/icbrt/contrib/workerpool"

// DispatchMode is the execution strategy chosen for a slice operation.
type DispatchMode int

const (
	// DispatchSerial runs on the caller's goroutine.
	DispatchSerial DispatchMode = iota

	// DispatchParallel splits the work across a worker pool.
	DispatchParallel
)

// String returns a human-readable name for the dispatch mode.
func (d DispatchMode) String() string {
	switch d {
	case DispatchSerial:
		return "serial"
	case DispatchParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Dispatch returns the mode a Parallel* call would use for n elements on pool.
func Dispatch(pool *workerpool.Pool, n int) DispatchMode {
	cfg := CurrentConfig()
	switch {
	case cfg.NoParallel:
		return DispatchSerial
	case pool == nil || pool.Closed() || pool.NumWorkers() < 2:
		return DispatchSerial
	case n < cfg.MinParallel:
		return DispatchSerial
	}
	return DispatchParallel
}

// NewPool creates a worker pool sized by the current configuration.
func NewPool() *workerpool.Pool {
	return workerpool.New(CurrentConfig().Workers)
}
