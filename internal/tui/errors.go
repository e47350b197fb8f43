// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-rm-cloud/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotRegistered):
		return "The session is no longer valid. Quit and run \"rmcloud register\"."
	case errors.Is(err, service.ErrRemoteProtocol):
		return "The cloud answered with something unexpected: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network, or the reMarkable cloud is unreachable"
	}

	return err.Error()
}
