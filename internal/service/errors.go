// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRemoteProtocol is returned when the cloud answers with a well-formed
	// but unsuccessful response: a refused slot, a wrong number of records or
	// a rejected blob upload.
	ErrRemoteProtocol = errors.New("remote protocol error")

	ErrDocumentNotFound = errors.New("document not found")
	ErrNotAFolder       = errors.New("not a folder")
	ErrBlobURLExpired   = errors.New("download url expired")

	ErrNotRegistered = errors.New("device is not registered")
	ErrInvalidCode   = errors.New("invalid one-time code")
	ErrInvalidName   = errors.New("invalid visible name")
)
