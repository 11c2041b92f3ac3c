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

// Package snmp polls the vendor status catalog of a Hytera DMR repeater
// over SNMP v1 and decodes it into a settings snapshot.
package snmp

import "strings"

// Hytera repeater OIDs under the vendor enterprise arc 1.3.6.1.4.1.40297.
// The catalog keeps the symbolic iso-root form; NumericOID translates to the
// numeric root at the session boundary.
const (
	// OIDPSUVoltage is in milli-volts (V * 1000).
	OIDPSUVoltage = "iso.3.6.1.4.1.40297.1.2.1.2.1.0"
	// OIDPATemperature is in milli-celsius (C * 1000).
	OIDPATemperature = "iso.3.6.1.4.1.40297.1.2.1.2.2.0"
	// OIDVSWR is the voltage ratio on the TX in dB.
	OIDVSWR = "iso.3.6.1.4.1.40297.1.2.1.2.4.0"
	// OIDTXFwdPower is the forward power in milli-watt.
	OIDTXFwdPower = "iso.3.6.1.4.1.40297.1.2.1.2.5.0"
	// OIDTXRefPower is the reflected power in milli-watt.
	OIDTXRefPower = "iso.3.6.1.4.1.40297.1.2.1.2.6.0"
	OIDRSSITS1    = "iso.3.6.1.4.1.40297.1.2.1.2.9.0"
	OIDRSSITS2    = "iso.3.6.1.4.1.40297.1.2.1.2.10.0"

	OIDRepeaterModel   = "iso.3.6.1.4.1.40297.1.2.4.1.0"
	OIDModelNumber     = "iso.3.6.1.4.1.40297.1.2.4.2.0"
	OIDFirmwareVersion = "iso.3.6.1.4.1.40297.1.2.4.3.0"
	// OIDRCDBVersion is the radio data version string.
	OIDRCDBVersion  = "iso.3.6.1.4.1.40297.1.2.4.4.0"
	OIDSerialNumber = "iso.3.6.1.4.1.40297.1.2.4.5.0"
	// OIDRadioAlias is the configured callsign.
	OIDRadioAlias = "iso.3.6.1.4.1.40297.1.2.4.6.0"
	OIDRadioID    = "iso.3.6.1.4.1.40297.1.2.4.7.0"
	// digital=0, analog=1, mixed=2
	OIDCurChannelMode = "iso.3.6.1.4.1.40297.1.2.4.8.0"
	OIDCurChannelName = "iso.3.6.1.4.1.40297.1.2.4.9.0"
	// OIDTXFrequence is in Hz.
	OIDTXFrequence = "iso.3.6.1.4.1.40297.1.2.4.10.0"
	// OIDRXFrequence is in Hz.
	OIDRXFrequence = "iso.3.6.1.4.1.40297.1.2.4.11.0"
	// receive=0, transmit=1
	OIDWorkStatus   = "iso.3.6.1.4.1.40297.1.2.4.12.0"
	OIDCurZoneAlias = "iso.3.6.1.4.1.40297.1.2.4.13.0"
)

// DecodeKind selects the decode path for an OID's response payload. The kind
// is fixed at registration time and never inferred from the response.
type DecodeKind int

const (
	// RawInteger is a big-endian unsigned integer reported as-is.
	RawInteger DecodeKind = iota
	// ScaledInteger decodes exactly like RawInteger; the tag documents that
	// the magnitude is in a milli-unit (mV, m°C, mW) the consumer may scale.
	ScaledInteger
	// Text is a UTF-8 string, padded by firmware with NULs and trailing
	// garbage that decoding strips.
	Text
)

// ObjectDescriptor identifies one polled quantity.
type ObjectDescriptor struct {
	OID    string
	Kind   DecodeKind
	Label  string
	Format string
}

// catalog order is the poll order and the report order; keep it stable.
var catalog = []ObjectDescriptor{
	{OID: OIDPSUVoltage, Kind: ScaledInteger, Label: "PSU Voltage", Format: "%d mV"},
	{OID: OIDPATemperature, Kind: ScaledInteger, Label: "PA Temperature", Format: "%d m°C"},
	{OID: OIDVSWR, Kind: ScaledInteger, Label: "VSWR", Format: "%d dB"},
	{OID: OIDTXFwdPower, Kind: ScaledInteger, Label: "TX Forward Power", Format: "%d mW"},
	{OID: OIDTXRefPower, Kind: ScaledInteger, Label: "TX Reflected Power", Format: "%d mW"},
	{OID: OIDRSSITS1, Kind: RawInteger, Label: "RSSI TS1", Format: "%d dB"},
	{OID: OIDRSSITS2, Kind: RawInteger, Label: "RSSI TS2", Format: "%d dB"},
	{OID: OIDRepeaterModel, Kind: Text, Label: "Repeater Model", Format: "%s"},
	{OID: OIDModelNumber, Kind: Text, Label: "Repeater Model Identification", Format: "%s"},
	{OID: OIDFirmwareVersion, Kind: Text, Label: "Repeater Firmware", Format: "%s"},
	{OID: OIDRCDBVersion, Kind: Text, Label: "Repeater Radio Data (RCDB)", Format: "%s"},
	{OID: OIDSerialNumber, Kind: Text, Label: "Repeater Serial No.", Format: "%s"},
	{OID: OIDRadioAlias, Kind: Text, Label: "Radio Alias (Callsign)", Format: "%s"},
	{OID: OIDRadioID, Kind: RawInteger, Label: "Repeater ID", Format: "%d"},
	{OID: OIDCurChannelMode, Kind: RawInteger, Label: "Current Channel Zone (0=DIGITAL, 1=ANALOG, 2=MIXED)", Format: "%d"},
	{OID: OIDCurChannelName, Kind: Text, Label: "Current Channel Name", Format: "%s"},
	{OID: OIDTXFrequence, Kind: RawInteger, Label: "TX Frequence", Format: "%d Hz"},
	{OID: OIDRXFrequence, Kind: RawInteger, Label: "RX Frequence", Format: "%d Hz"},
	{OID: OIDWorkStatus, Kind: RawInteger, Label: "Work Status (0=RECEIVE, 1=TRANSMIT)", Format: "%d"},
	{OID: OIDCurZoneAlias, Kind: Text, Label: "Current Zone Alias", Format: "%s"},
}

var descriptorIndex = buildDescriptorIndex()

func buildDescriptorIndex() map[string]*ObjectDescriptor {
	index := make(map[string]*ObjectDescriptor, len(catalog))

	for i := range catalog {
		index[catalog[i].OID] = &catalog[i]
	}

	return index
}

// DescriptorFor looks up the descriptor registered for oid.
func DescriptorFor(oid string) (*ObjectDescriptor, bool) {
	desc, ok := descriptorIndex[oid]
	return desc, ok
}

// AllOIDs returns every catalog OID in poll order.
func AllOIDs() []string {
	oids := make([]string, len(catalog))

	for i := range catalog {
		oids[i] = catalog[i].OID
	}

	return oids
}

// NumericOID converts the catalog's symbolic iso-root form into the numeric
// form the wire protocol expects.
func NumericOID(oid string) string {
	return strings.Replace(oid, "iso", "1", 1)
}
