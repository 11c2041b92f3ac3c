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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decode converts a raw response payload into the semantic value for kind:
// uint64 for the integer kinds, string for Text. Integer magnitudes are
// reported raw; any milli-unit scaling documented on the OID is left to the
// consumer.
func Decode(kind DecodeKind, raw []byte) (any, error) {
	switch kind {
	case RawInteger, ScaledInteger:
		return decodeUint(raw), nil
	case Text:
		return decodeText(raw)
	default:
		return nil, fmt.Errorf("%w: kind %d", errUnknownDecodeKind, kind)
	}
}

// decodeUint interprets raw as a big-endian unsigned integer. Empty input
// decodes to zero, matching an INTEGER PDU carrying value 0.
func decodeUint(raw []byte) uint64 {
	var value uint64

	for _, b := range raw {
		value = value<<8 | uint64(b)
	}

	return value
}

// decodeText interprets raw as UTF-8 and normalizes the padding vendor
// firmware appends to fixed-width string fields: embedded NULs are dropped
// and trailing non-printable bytes trimmed.
func decodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: % x", errInvalidText, raw)
	}

	text := strings.ReplaceAll(string(raw), "\x00", "")
	text = strings.TrimRightFunc(text, func(r rune) bool {
		return !unicode.IsPrint(r)
	})

	return text, nil
}
