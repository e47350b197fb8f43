// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// DocType discriminates notebooks from folders on the wire.
type DocType string

const (
	// DocumentType is the wire value for notebooks (and imported PDFs/EPUBs).
	DocumentType DocType = "DocumentType"

	// CollectionType is the wire value for folders.
	CollectionType DocType = "CollectionType"
)

// IsFolder reports whether t denotes a folder.
func (t DocType) IsFolder() bool {
	return t == CollectionType
}

// Document is a single remote notebook or folder record as returned by the
// document-storage listing endpoint.
//
// The JSON keys follow the remote API verbatim, including its
// "VissibleName" spelling.
type Document struct {
	// ID is assigned by the server and never changes.
	ID uuid.UUID `json:"ID"`

	// Version is the server-side revision counter of the record.
	Version int `json:"Version"`

	// Message is a free-form status message from the server.
	Message string `json:"Message"`

	// Success is set by the server on per-record responses.
	Success bool `json:"Success"`

	// BlobURLGet is a time-limited, single-use URL for downloading the
	// document archive. Only populated when listing with withBlob=1.
	BlobURLGet string `json:"BlobURLGet"`

	// BlobURLGetExpires is the expiry of BlobURLGet.
	BlobURLGetExpires time.Time `json:"BlobURLGetExpires"`

	// ModifiedClient is the last client-side modification timestamp.
	ModifiedClient time.Time `json:"ModifiedClient"`

	// Type tells notebooks and folders apart.
	Type DocType `json:"Type"`

	// VisibleName is the display name. It is not required to be unique,
	// not even among siblings.
	VisibleName string `json:"VissibleName"`

	// CurrentPage is the page the document was last opened on.
	CurrentPage int `json:"CurrentPage"`

	// Bookmarked marks favourites.
	Bookmarked bool `json:"Bookmarked"`

	// Parent locates the document in the hierarchy.
	Parent Parent `json:"Parent"`
}

// IsFolder reports whether d is a folder.
func (d Document) IsFolder() bool {
	return d.Type.IsFolder()
}

// BlobURLExpired reports whether the download URL is missing or already
// expired at the given moment.
func (d Document) BlobURLExpired(now time.Time) bool {
	if d.BlobURLGet == "" {
		return true
	}
	if d.BlobURLGetExpires.IsZero() {
		return false
	}
	return !now.Before(d.BlobURLGetExpires)
}
