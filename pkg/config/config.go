/*
 * Copyright 2025 Simon Binom.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads JSON configuration files into validated structs.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/simonbinom/hyteragw-zsoags/pkg/logger"
)

var (
	errLoadConfigFailed = errors.New("failed to load configuration")
	errInvalidConfigPtr = errors.New("config must be a non-nil pointer")
)

// Validator is implemented by config structs that can fill defaults and
// reject unusable settings after decoding.
type Validator interface {
	Validate() error
}

// Config holds the configuration loading dependencies.
type Config struct {
	logger logger.Logger
}

// NewConfig initializes a new Config instance. If log is nil a minimal
// stderr logger is used.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.NewZerologAdapter(zerolog.New(os.Stderr).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Logger())
	}

	return &Config{logger: log}
}

// LoadAndValidate reads the JSON file at path into dst and, when dst
// implements Validator, validates it.
func (c *Config) LoadAndValidate(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errLoadConfigFailed, err)
	}

	if dst == nil {
		return errInvalidConfigPtr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errLoadConfigFailed, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", errLoadConfigFailed, err)
	}

	if v, ok := dst.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", errLoadConfigFailed, err)
		}
	}

	c.logger.Debug().Str("path", path).Msg("Loaded configuration")

	return nil
}
