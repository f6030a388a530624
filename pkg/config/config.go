// Copyright 2022 VectorSQL Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the engine configuration from a toml file.
package config

import (
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/logutil"
)

const (
	defaultBatchSize = 8192
)

// Config is the engine configuration.
type Config struct {
	// BatchSize is the row count of one execution batch.
	BatchSize int `toml:"batch-size"`
	// Parallelism is the pipeline worker count.
	Parallelism int `toml:"parallelism"`
	// MemoryLimit caps each invocation pool, in bytes.  Zero means
	// unbounded.
	MemoryLimit int64 `toml:"memory-limit"`

	Log logutil.LogConfig `toml:"log"`
}

// Default returns a configuration usable without any file.
func Default() *Config {
	cfg := &Config{
		BatchSize:   defaultBatchSize,
		Parallelism: runtime.NumCPU(),
	}
	cfg.Log.Adjust()
	return cfg
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, moerr.NewBadConfig("decode %s: %s", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logutil.Infof("config loaded from %s: batch-size %d, parallelism %d",
		path, cfg.BatchSize, cfg.Parallelism)
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.BatchSize <= 0 {
		return moerr.NewBadConfig("batch-size %d, want a positive row count", cfg.BatchSize)
	}
	if cfg.Parallelism <= 0 {
		return moerr.NewBadConfig("parallelism %d, want at least one worker", cfg.Parallelism)
	}
	if cfg.MemoryLimit < 0 {
		return moerr.NewBadConfig("memory-limit %d, want zero or positive bytes", cfg.MemoryLimit)
	}
	return nil
}
