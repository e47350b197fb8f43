// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package index rebuilds the document hierarchy from the flat list returned
// by the document-storage API.
//
// The remote only tells each record who its parent is, so the [Index] keeps
// an id → document mapping and derives children, paths and ancestor chains
// from parent back-references on demand. Parents that are not part of the
// index (the root, the trash bin, folders filtered out by the server) are
// valid and expected.
//
// An Index is not safe for concurrent mutation: InsertAll and Remove must not
// race with each other or with readers.
package index

import (
	"bytes"
	"sort"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/models"
)

// Index owns a set of documents keyed by id.
type Index struct {
	byID map[uuid.UUID]*models.Document
}

// New returns an index holding docs. It is a shorthand for InsertAll on an
// empty index.
func New(docs ...models.Document) *Index {
	return InsertAll(docs)
}

// InsertAll builds an index from a flat list. The order of docs does not
// matter; when two documents share an id the later one wins.
func InsertAll(docs []models.Document) *Index {
	idx := &Index{byID: make(map[uuid.UUID]*models.Document, len(docs))}
	for i := range docs {
		doc := docs[i]
		idx.byID[doc.ID] = &doc
	}
	return idx
}

// Len returns the number of documents in the index.
func (idx *Index) Len() int {
	return len(idx.byID)
}

// Get returns the document with the given id. The returned pointer stays
// owned by the index.
func (idx *Index) Get(id uuid.UUID) (*models.Document, bool) {
	doc, ok := idx.byID[id]
	return doc, ok
}

// Remove takes the document with the given id out of the index and hands it
// to the caller.
func (idx *Index) Remove(id uuid.UUID) (models.Document, bool) {
	doc, ok := idx.byID[id]
	if !ok {
		return models.Document{}, false
	}
	delete(idx.byID, id)
	return *doc, true
}

// All returns every document ordered by id.
func (idx *Index) All() []*models.Document {
	docs := make([]*models.Document, 0, len(idx.byID))
	for _, doc := range idx.byID {
		docs = append(docs, doc)
	}
	sortByID(docs)
	return docs
}

// Children returns the documents whose parent equals parent, ordered by id.
func (idx *Index) Children(parent models.Parent) []*models.Document {
	var docs []*models.Document
	for _, doc := range idx.byID {
		if doc.Parent == parent {
			docs = append(docs, doc)
		}
	}
	sortByID(docs)
	return docs
}

func sortByID(docs []*models.Document) {
	sort.Slice(docs, func(i, j int) bool {
		return bytes.Compare(docs[i].ID[:], docs[j].ID[:]) < 0
	})
}
