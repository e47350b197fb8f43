// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClientState is the long-lived session of a registered client.
type ClientState struct {
	// DeviceToken is issued once when the device is paired and is used to
	// mint user tokens.
	DeviceToken string `json:"device_token"`

	// UserToken is the short-lived bearer token for document-storage calls.
	UserToken string `json:"user_token"`

	// Endpoint is the discovered storage base URL, e.g.
	// "https://document-storage-production-dot-remarkable-production.appspot.com".
	Endpoint string `json:"endpoint"`

	// UpdatedAt is when the state was last persisted.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsRegistered reports whether a device token is present.
func (s ClientState) IsRegistered() bool {
	return s.DeviceToken != ""
}

// StorageHost is the answer of the service-discovery endpoint.
type StorageHost struct {
	Status string `json:"Status"`
	Host   string `json:"Host"`
}

// StorageHostOK is the only Status value that carries a usable host.
const StorageHostOK = "OK"

// DeviceRegistration pairs a new device using a one-time code.
type DeviceRegistration struct {
	Code       string `json:"code"`
	DeviceDesc string `json:"deviceDesc"`
	DeviceID   string `json:"deviceID"`
}
