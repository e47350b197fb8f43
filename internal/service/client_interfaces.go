// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic: pairing and session
// handling, the three-phase upload protocol and path-based document queries
// on top of [adapter.CloudAdapter].
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=servicemock/client_services_mock.go -package=servicemock

// ClientAuthService defines the client-side contract for device pairing and
// for keeping a usable session.
type ClientAuthService interface {
	// RegisterDevice pairs this client with the account that issued the
	// one-time code and stores the resulting device token locally.
	// Returns an error if the code is malformed, the cloud rejects it or the
	// state cannot be saved.
	RegisterDevice(ctx context.Context, code string) error

	// Authenticate loads the stored session, refreshes the user token when it
	// is missing or about to expire, resolves the document-storage host and
	// arms the adapter with both. It must succeed before any document call.
	// Returns ErrNotRegistered if the device was never paired or the cloud no
	// longer accepts its device token.
	Authenticate(ctx context.Context) error

	// Logout forgets the stored session.
	Logout(ctx context.Context) error
}

// ClientUploadService runs the upload protocol: request a slot, upload the
// archive, confirm the metadata. Failures are reported as *UploadError and
// are not rolled back.
type ClientUploadService interface {
	// UploadNotebook uploads archive as a notebook described by draft. The
	// archive is rekeyed to whatever id the cloud assigns.
	UploadNotebook(ctx context.Context, draft models.Draft, archive []byte) (UploadResult, error)

	// CreateFolder creates the folder described by draft.
	CreateFolder(ctx context.Context, draft models.Draft) (UploadResult, error)
}

// ClientDocumentService answers path-based questions about the document tree.
// Each call fetches a fresh listing; nothing is cached between calls.
type ClientDocumentService interface {
	// Index fetches every record and builds the hierarchy from it.
	Index(ctx context.Context) (*index.Index, error)

	// Lookup resolves a slash-separated path to a document.
	// Returns ErrDocumentNotFound if nothing matches.
	Lookup(ctx context.Context, path string) (models.Document, error)

	// List returns the children of the folder at path, or the document itself
	// if path names a notebook. "/" and "" list the root.
	List(ctx context.Context, path string) ([]models.Document, error)

	// Fetch returns the record with the given id including a download URL.
	Fetch(ctx context.Context, id uuid.UUID) (models.Document, error)

	// Download fetches the record with the given id and its archive.
	Download(ctx context.Context, id uuid.UUID) (models.Document, []byte, error)

	// Mkdir creates a folder at path. Every component but the last must
	// already exist.
	Mkdir(ctx context.Context, path string) (UploadResult, error)

	// Push uploads archive as a notebook at path; the last component becomes
	// its visible name.
	Push(ctx context.Context, archive []byte, path string) (UploadResult, error)
}

// IDGenerator proposes ids for new records.
type IDGenerator interface {
	Generate() uuid.UUID
}
