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
	"fmt"

	"github.com/simonbinom/hyteragw-zsoags/pkg/logger"
	"github.com/simonbinom/hyteragw-zsoags/pkg/settings"
)

const (
	reportBanner = "-------------- REPEATER SNMP CONFIGURATION ----------------------------"
	// labelGutter separates the label column from the value column.
	labelGutter = 5
)

// Report emits one aligned line per store entry that has a catalog
// descriptor, in the store's insertion order. Entries without a descriptor
// are skipped; unknown vendor fields degrade by omission, never by error.
func Report(store *settings.Store, log logger.Logger) {
	log.Info().Msg(reportBanner)

	width := longestLabel() + labelGutter

	for _, oid := range store.OIDs() {
		desc, ok := DescriptorFor(oid)
		if !ok {
			continue
		}

		value, _ := store.Get(oid)
		log.Info().Msgf("%-*s| %s", width, desc.Label, fmt.Sprintf(desc.Format, value))
	}

	log.Info().Msg(reportBanner)
}

// longestLabel is measured over the whole catalog, not the store, so the
// column width is stable across partial stores.
func longestLabel() int {
	longest := 0

	for i := range catalog {
		if n := len(catalog[i].Label); n > longest {
			longest = n
		}
	}

	return longest
}
