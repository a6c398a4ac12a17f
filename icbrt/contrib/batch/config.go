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
	"sync/atomic"

	"github.com/ajroetker/go-icbrt/icbrt/contrib/workerpool"
	"github.com/caarlos0/env/v11"
)

// Config controls how the Parallel* functions split work.
type Config struct {
	// NoParallel forces the serial path regardless of input size.
	// This is useful for testing and debugging.
	NoParallel bool `env:"ICBRT_NO_PARALLEL"`

	// MinParallel is the smallest input length handed to the pool.
	// Shorter inputs finish faster on the caller's goroutine.
	MinParallel int `env:"ICBRT_MIN_PARALLEL" envDefault:"4096"`

	// Workers is the size used by NewPool. Zero means GOMAXPROCS.
	Workers int `env:"ICBRT_WORKERS" envDefault:"0"`

	// BatchSize is the number of elements a worker takes per grab in the
	// checked parallel path.
	BatchSize int `env:"ICBRT_BATCH_SIZE" envDefault:"1024"`
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		MinParallel: 4096,
		BatchSize:   workerpool.DefaultBatchSize,
	}
}

// LoadConfig reads the configuration from ICBRT_* environment variables.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

// currentConfig is set by init() from the environment, and by SetConfig.
var currentConfig atomic.Pointer[Config]

func init() {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = DefaultConfig()
	}
	SetConfig(cfg)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return *currentConfig.Load()
}

// SetConfig replaces the configuration in effect. Non-positive MinParallel
// and BatchSize values are replaced by their defaults.
func SetConfig(cfg Config) {
	def := DefaultConfig()
	if cfg.MinParallel <= 0 {
		cfg.MinParallel = def.MinParallel
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	currentConfig.Store(&cfg)
}
