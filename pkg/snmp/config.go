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
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Communities known to ship on Hytera repeater firmware. A repeater answers
// on exactly one of them; which one is not knowable up front, hence the
// walker's fallback policy.
const (
	CommunityPublic = "public"
	CommunityHytera = "hytera"

	DefaultCommunity = CommunityPublic
)

const (
	defaultPort    = 161
	defaultTimeout = 2 * time.Second
)

var errInvalidDuration = errors.New("invalid duration value")

// Duration is a wrapper around time.Duration for JSON unmarshaling.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}

		*d = Duration(tmp)
	default:
		return errInvalidDuration
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the repeater poller configuration.
type Config struct {
	Community string   `json:"community"`
	Port      uint16   `json:"port"`
	Timeout   Duration `json:"timeout"`
}

// Validate fills defaults and rejects unusable settings.
func (c *Config) Validate() error {
	if c.Community == "" {
		c.Community = DefaultCommunity
	}

	if c.Community != CommunityPublic && c.Community != CommunityHytera {
		return fmt.Errorf("%w: unknown community %q", errInvalidConfig, c.Community)
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Timeout <= 0 {
		c.Timeout = Duration(defaultTimeout)
	}

	return nil
}

// AlternateCommunity returns the other of the two known communities.
func AlternateCommunity(community string) string {
	if community == CommunityHytera {
		return CommunityPublic
	}

	return CommunityHytera
}
