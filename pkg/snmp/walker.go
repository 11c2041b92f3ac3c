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

package snmp

import (
	"context"
	"fmt"
	"time"

	"github.com/simonbinom/hyteragw-zsoags/pkg/logger"
	"github.com/simonbinom/hyteragw-zsoags/pkg/settings"
)

// maxAttempts bounds the community fallback: one initial walk plus one
// retry with the alternate community, never more.
const maxAttempts = 2

// Walker performs full polls of a repeater's status catalog.
type Walker struct {
	community string
	port      uint16
	timeout   time.Duration
	sessions  SessionFactory
	logger    logger.Logger
}

// NewWalker creates a walker from a validated config.
func NewWalker(config *Config, log logger.Logger) (*Walker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Walker{
		community: config.Community,
		port:      config.Port,
		timeout:   time.Duration(config.Timeout),
		sessions:  NewSession,
		logger:    log,
	}, nil
}

// Walk polls every catalog OID from target once, in catalog order. On full
// success it merges the snapshot into store, emits the report, and returns
// the snapshot with ok=true. On any failure the store is left untouched and
// an empty snapshot is returned with ok=false.
//
// A timeout on the first attempt is retried exactly once with the alternate
// community: devices that only accept the non-default community show a
// mismatch as silence, not as an error response. A refused connection means
// the management port is closed and is never retried. Failures never
// propagate as errors; they are logged and reported through ok.
func (w *Walker) Walk(ctx context.Context, target string, store *settings.Store) (*settings.Store, bool) {
	community := w.community

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snapshot, err := w.attempt(ctx, target, community)
		if err == nil {
			store.Merge(snapshot)
			Report(store, w.logger)

			return snapshot, true
		}

		switch classify(err) {
		case failureRefused:
			w.logger.Error().Err(err).Str("target", target).
				Msg("SNMP walk failed, connection to the management port was refused")
		case failureTimeout, failureDecode:
			if attempt < maxAttempts {
				alternate := AlternateCommunity(community)
				w.logger.Debug().Str("target", target).
					Str("community", community).
					Str("fallback_community", alternate).
					Msg("SNMP walk got no usable answer, retrying with the alternate community")

				community = alternate

				continue
			}

			w.logger.Error().Err(err).Str("target", target).Str("community", community).
				Msg("SNMP walk failed on the fallback community")
		default:
			w.logger.Error().Err(err).Str("target", target).
				Msg("SNMP walk failed to obtain repeater info")
		}

		return settings.NewStore(), false
	}

	return settings.NewStore(), false
}

// attempt runs one all-or-nothing pass over the catalog with a single
// session. The first fetch or decode failure aborts the pass; no OID is
// retried individually.
func (w *Walker) attempt(ctx context.Context, target, community string) (*settings.Store, error) {
	session, err := w.sessions(target, w.port, community, w.timeout)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	snapshot := settings.NewStore()

	for _, oid := range AllOIDs() {
		desc, ok := DescriptorFor(oid)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errNoSuchObject, oid)
		}

		reqCtx, cancel := context.WithTimeout(ctx, w.timeout)
		raw, err := session.Get(reqCtx, NumericOID(oid))

		cancel()

		if err != nil {
			return nil, fmt.Errorf("get %s: %w", oid, err)
		}

		value, err := Decode(desc.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", oid, err)
		}

		snapshot.Set(oid, value)
	}

	return snapshot, nil
}
