// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Draft describes a record the client wants to create on the remote.
//
// A Draft is a value: phases of the upload protocol never modify the draft
// they were given, they derive a new one with [Draft.WithID] once the server
// has confirmed the identifier it will actually use.
type Draft struct {
	// ID is the identifier proposed by the client. The server may replace it.
	ID uuid.UUID

	// VisibleName is the display name to confirm after the upload.
	VisibleName string

	// Parent is where the record should appear.
	Parent Parent

	// Type selects notebook or folder semantics.
	Type DocType
}

// NewNotebookDraft returns a draft for a notebook.
func NewNotebookDraft(id uuid.UUID, visibleName string, parent Parent) Draft {
	return Draft{ID: id, VisibleName: visibleName, Parent: parent, Type: DocumentType}
}

// NewFolderDraft returns a draft for a folder.
func NewFolderDraft(id uuid.UUID, visibleName string, parent Parent) Draft {
	return Draft{ID: id, VisibleName: visibleName, Parent: parent, Type: CollectionType}
}

// WithID returns a copy of d carrying id.
func (d Draft) WithID(id uuid.UUID) Draft {
	d.ID = id
	return d
}
