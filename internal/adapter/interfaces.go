// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the reMarkable
// cloud.
//
// The primary abstraction is [CloudAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPCloudAdapter]) that speaks to three kinds of hosts: the auth host
// (device pairing and user tokens), the service-discovery host and the
// document-storage host it advertises. Presigned blob URLs are served by yet
// another host and are fetched without credentials.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter is the authenticated-request capability of the client.
// Implementations own serialisation, bearer-token handling and the mapping of
// transport failures onto the sentinel errors of this package.
type CloudAdapter interface {
	// SetToken stores the user token attached to document-storage requests.
	SetToken(token string)

	// Token returns the user token currently held, or "".
	Token() string

	// SetStorageHost points document-storage requests at endpoint, e.g.
	// "https://document-storage-production-dot-remarkable-production.appspot.com".
	SetStorageHost(endpoint string) error

	// StorageHost returns the current document-storage endpoint, or "".
	StorageHost() string

	// RegisterDevice pairs a new device with the account the one-time code
	// was issued for and returns the device token.
	RegisterDevice(ctx context.Context, reg models.DeviceRegistration) (string, error)

	// RefreshUserToken exchanges a device token for a fresh user token. The
	// adapter's own token is not changed.
	RefreshUserToken(ctx context.Context, deviceToken string) (string, error)

	// DiscoverStorageHost asks the service manager which host serves
	// document storage and returns it as an https endpoint.
	DiscoverStorageHost(ctx context.Context) (string, error)

	// ListDocuments returns every record of the account. With withBlob set
	// each record carries a short-lived download URL.
	ListDocuments(ctx context.Context, withBlob bool) ([]models.Document, error)

	// GetDocument returns the records matching id, normally exactly one,
	// including a download URL.
	GetDocument(ctx context.Context, id uuid.UUID) ([]models.Document, error)

	// RequestUpload asks for upload slots for the given records.
	RequestUpload(ctx context.Context, reqs []models.UploadRequest) ([]models.UploadRequestResponse, error)

	// PutBlob uploads an archive to a presigned URL. The request carries an
	// explicitly empty Content-Type and no credentials.
	PutBlob(ctx context.Context, url string, data []byte) error

	// UpdateStatus confirms the metadata of uploaded records.
	UpdateStatus(ctx context.Context, reqs []models.UpdateStatusRequest) ([]models.UpdateStatusResponse, error)

	// GetBlob downloads the archive behind a presigned URL.
	GetBlob(ctx context.Context, url string) ([]byte, error)
}
