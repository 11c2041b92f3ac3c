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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOIDsAreUnique(t *testing.T) {
	seen := make(map[string]string, len(catalog))

	for _, desc := range catalog {
		previous, dup := seen[desc.OID]
		require.False(t, dup, "OID %s registered for both %q and %q", desc.OID, previous, desc.Label)
		seen[desc.OID] = desc.Label
	}
}

func TestAllOIDsMatchesCatalogOrder(t *testing.T) {
	oids := AllOIDs()
	require.Len(t, oids, len(catalog))

	for i, desc := range catalog {
		assert.Equal(t, desc.OID, oids[i])
	}
}

func TestDescriptorFor(t *testing.T) {
	for _, oid := range AllOIDs() {
		desc, ok := DescriptorFor(oid)
		require.True(t, ok, "missing descriptor for %s", oid)
		assert.Equal(t, oid, desc.OID)
		assert.NotEmpty(t, desc.Label)
		assert.NotEmpty(t, desc.Format)
	}

	_, ok := DescriptorFor("iso.3.6.1.4.1.40297.9.9.9.0")
	assert.False(t, ok)
}

func TestNumericOID(t *testing.T) {
	assert.Equal(t, "1.3.6.1.4.1.40297.1.2.1.2.1.0", NumericOID(OIDPSUVoltage))
	assert.Equal(t, "1.3.6.1.4.1.40297.1.2.4.6.0", NumericOID(OIDRadioAlias))
}
