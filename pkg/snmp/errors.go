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
	"errors"
	"net"
	"strings"
	"syscall"
)

var (
	errInvalidText       = errors.New("octet string is not valid UTF-8")
	errUnknownDecodeKind = errors.New("unknown decode kind")
	errNoSuchObject      = errors.New("no such object on device")
	errEmptyResponse     = errors.New("empty SNMP response")
	errResponseStatus    = errors.New("SNMP response reported an error status")
	errInvalidConfig     = errors.New("invalid SNMP configuration")
)

// failureClass drives the walker's retry policy.
type failureClass int

const (
	failureNone failureClass = iota
	// failureRefused means the management port is closed on the target; a
	// different community cannot change that, so no retry.
	failureRefused
	// failureTimeout covers timeouts and cancellation. On the first attempt
	// it is read as the symptom of a community mismatch and retried once
	// with the alternate community.
	failureTimeout
	// failureDecode is a malformed payload; it aborts the attempt exactly
	// like a protocol-level failure.
	failureDecode
	failureOther
)

func classify(err error) failureClass {
	switch {
	case err == nil:
		return failureNone
	case errors.Is(err, syscall.ECONNREFUSED):
		return failureRefused
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return failureTimeout
	case errors.Is(err, errInvalidText):
		return failureDecode
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failureTimeout
	}

	// gosnmp reports its own request timeouts as plain errors.
	if strings.Contains(err.Error(), "request timeout") {
		return failureTimeout
	}

	return failureOther
}
