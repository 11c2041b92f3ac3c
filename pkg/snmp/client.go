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

//go:generate mockgen -destination=mock_session.go -package=snmp github.com/simonbinom/hyteragw-zsoags/pkg/snmp Session

package snmp

import (
	"context"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

// Session is one read-only management connection to a repeater. Get takes
// the numeric-root OID form and returns the raw response payload; all
// interpretation belongs to Decode.
type Session interface {
	Get(ctx context.Context, oid string) ([]byte, error)
	Close() error
}

// SessionFactory opens a Session against target with the given credential
// community. Each walk attempt opens and closes its own session.
type SessionFactory func(target string, port uint16, community string, timeout time.Duration) (Session, error)

type snmpSession struct {
	client *gosnmp.GoSNMP
}

// NewSession opens an SNMP v1 session. The timeout bounds each request on
// the wire; retries are left to the walker's fallback policy.
func NewSession(target string, port uint16, community string, timeout time.Duration) (Session, error) {
	client := &gosnmp.GoSNMP{
		Target:    target,
		Port:      port,
		Community: community,
		Version:   gosnmp.Version1,
		Timeout:   timeout,
		Retries:   0,
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("snmp connect to %s: %w", target, err)
	}

	return &snmpSession{client: client}, nil
}

func (s *snmpSession) Get(ctx context.Context, oid string) ([]byte, error) {
	type response struct {
		packet *gosnmp.SnmpPacket
		err    error
	}

	ch := make(chan response, 1)

	go func() {
		packet, err := s.client.Get([]string{oid})
		ch <- response{packet: packet, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case resp := <-ch:
		if resp.err != nil {
			return nil, resp.err
		}

		return pduBytes(resp.packet, oid)
	}
}

func (s *snmpSession) Close() error {
	if s.client.Conn == nil {
		return nil
	}

	return s.client.Conn.Close()
}

// pduBytes normalizes the first variable binding of packet to raw bytes:
// octet strings verbatim, integer types as big-endian magnitude.
func pduBytes(packet *gosnmp.SnmpPacket, oid string) ([]byte, error) {
	if packet.Error != gosnmp.NoError {
		return nil, fmt.Errorf("%w: %s for %s", errResponseStatus, packet.Error, oid)
	}

	if len(packet.Variables) == 0 {
		return nil, fmt.Errorf("%w: %s", errEmptyResponse, oid)
	}

	pdu := packet.Variables[0]

	switch pdu.Type {
	case gosnmp.OctetString:
		raw, ok := pdu.Value.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: octet string for %s", errEmptyResponse, oid)
		}

		return raw, nil
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
		return nil, fmt.Errorf("%w: %s", errNoSuchObject, oid)
	default:
		return gosnmp.ToBigInt(pdu.Value).Bytes(), nil
	}
}
