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

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the leveled logging interface components depend on, so tests can
// swap in a silent implementation.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	With() zerolog.Context
	WithComponent(component string) zerolog.Logger
	SetLevel(level zerolog.Level)
	SetDebug(debug bool)
}

// NewZerologAdapter wraps an existing zerolog.Logger as a Logger.
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

type zerologAdapter struct {
	logger zerolog.Logger
}

func (a *zerologAdapter) Debug() *zerolog.Event { return a.logger.Debug() }
func (a *zerologAdapter) Info() *zerolog.Event  { return a.logger.Info() }
func (a *zerologAdapter) Warn() *zerolog.Event  { return a.logger.Warn() }
func (a *zerologAdapter) Error() *zerolog.Event { return a.logger.Error() }
func (a *zerologAdapter) Fatal() *zerolog.Event { return a.logger.Fatal() }
func (a *zerologAdapter) With() zerolog.Context { return a.logger.With() }
func (a *zerologAdapter) WithComponent(component string) zerolog.Logger {
	return a.logger.With().Str("component", component).Logger()
}
func (a *zerologAdapter) SetLevel(level zerolog.Level) { a.logger = a.logger.Level(level) }
func (a *zerologAdapter) SetDebug(debug bool) {
	if debug {
		a.SetLevel(zerolog.DebugLevel)
	} else {
		a.SetLevel(zerolog.InfoLevel)
	}
}

// NewTestLogger creates a no-op logger for testing that discards all output
func NewTestLogger() Logger {
	nopLogger := zerolog.New(io.Discard).Level(zerolog.Disabled)
	return &zerologAdapter{logger: nopLogger}
}
