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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonbinom/hyteragw-zsoags/pkg/logger"
	"github.com/simonbinom/hyteragw-zsoags/pkg/settings"
)

// reportLines runs Report against a buffer-backed logger and returns the
// emitted message per log line.
func reportLines(t *testing.T, store *settings.Store) []string {
	t.Helper()

	var buf bytes.Buffer

	Report(store, logger.NewZerologAdapter(zerolog.New(&buf)))

	var lines []string

	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry struct {
			Message string `json:"message"`
		}

		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry.Message)
	}

	return lines
}

func TestReportSkipsUnknownEntries(t *testing.T) {
	store := settings.NewStore()
	store.Set(OIDRadioAlias, "CALLSIGN")
	store.Set(OIDPSUVoltage, uint64(5000))
	// A vendor field the catalog does not describe is skipped silently.
	store.Set("iso.3.6.1.4.1.40297.9.9.9.0", uint64(1))

	lines := reportLines(t, store)

	require.Len(t, lines, 4)
	assert.Equal(t, reportBanner, lines[0])
	assert.Equal(t, reportBanner, lines[3])

	width := longestLabel() + labelGutter
	assert.Equal(t, fmt.Sprintf("%-*s| CALLSIGN", width, "Radio Alias (Callsign)"), lines[1])
	assert.Equal(t, fmt.Sprintf("%-*s| 5000 mV", width, "PSU Voltage"), lines[2])
}

func TestReportFollowsStoreOrder(t *testing.T) {
	store := settings.NewStore()
	store.Set(OIDTXFrequence, uint64(438787500))
	store.Set(OIDRadioAlias, "OK0DMR")

	lines := reportLines(t, store)

	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "TX Frequence")
	assert.Contains(t, lines[1], "438787500 Hz")
	assert.Contains(t, lines[2], "Radio Alias (Callsign)")
}

func TestReportEmptyStore(t *testing.T) {
	lines := reportLines(t, settings.NewStore())

	// Only the banners remain.
	require.Len(t, lines, 2)
	assert.Equal(t, reportBanner, lines[0])
	assert.Equal(t, reportBanner, lines[1])
}

func TestReportLabelColumnWidth(t *testing.T) {
	store := settings.NewStore()
	store.Set(OIDVSWR, uint64(52))

	lines := reportLines(t, store)
	require.Len(t, lines, 4)

	// Every label column is as wide as the longest catalog label plus the
	// gutter, regardless of which entries are present.
	separator := strings.Index(lines[1], "|")
	assert.Equal(t, longestLabel()+labelGutter, separator)
}
