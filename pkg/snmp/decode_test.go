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

func TestDecodeInteger(t *testing.T) {
	tests := []struct {
		name string
		kind DecodeKind
		raw  []byte
		want uint64
	}{
		{
			name: "big-endian unsigned",
			kind: RawInteger,
			raw:  []byte{0x00, 0x00, 0x13, 0x88},
			want: 5000,
		},
		{
			// Scaled values decode through the same path; the result is the
			// raw magnitude (here 5000 mV), not a physical unit.
			name: "scaled shares the raw path",
			kind: ScaledInteger,
			raw:  []byte{0x00, 0x00, 0x13, 0x88},
			want: 5000,
		},
		{
			name: "single byte",
			kind: RawInteger,
			raw:  []byte{0x02},
			want: 2,
		},
		{
			name: "empty payload is zero",
			kind: RawInteger,
			raw:  nil,
			want: 0,
		},
		{
			name: "full width",
			kind: RawInteger,
			raw:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			want: 18446744073709551615,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode(tt.kind, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "strips trailing NUL padding",
			raw:  []byte("CALLSIGN\x00\x00"),
			want: "CALLSIGN",
		},
		{
			name: "drops embedded NULs",
			raw:  []byte("RD9\x0085"),
			want: "RD985",
		},
		{
			name: "trims trailing non-printables",
			raw:  []byte("A9.01.02.005\r\n"),
			want: "A9.01.02.005",
		},
		{
			name: "plain string unchanged",
			raw:  []byte("Repeater Site 1"),
			want: "Repeater Site 1",
		},
		{
			name: "empty payload",
			raw:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode(Text, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	_, err := Decode(Text, []byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
	require.ErrorIs(t, err, errInvalidText)

	assert.Equal(t, failureDecode, classify(err))
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(DecodeKind(42), []byte{0x01})
	require.ErrorIs(t, err, errUnknownDecodeKind)
}
