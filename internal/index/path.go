// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package index

import (
	"bytes"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/models"
)

// SplitPath turns a slash-separated path into its components. Leading,
// trailing and repeated slashes as well as "." segments are ignored, so "/",
// "" and "." all yield no components.
func SplitPath(path string) []string {
	var components []string
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." {
			continue
		}
		components = append(components, segment)
	}
	return components
}

// ResolvePath finds the document reached by walking components from the
// root: the first component is looked up among root-level documents, every
// following component among the children of the previous match.
//
// Visible names are not unique. When several siblings share a name the one
// with the lowest id is taken. An empty path resolves to nothing because the
// root is not a document.
func (idx *Index) ResolvePath(components []string) (*models.Document, bool) {
	return idx.ResolvePathFrom(models.RootParent(), components)
}

// ResolvePathFrom is like ResolvePath but starts the walk below parent, e.g.
// in the trash bin.
func (idx *Index) ResolvePathFrom(parent models.Parent, components []string) (*models.Document, bool) {
	if len(components) == 0 {
		return nil, false
	}

	var current *models.Document
	for _, name := range components {
		current = idx.childNamed(parent, name)
		if current == nil {
			return nil, false
		}
		parent = models.NodeParent(current.ID)
	}
	return current, true
}

func (idx *Index) childNamed(parent models.Parent, name string) *models.Document {
	var found *models.Document
	for _, doc := range idx.byID {
		if doc.Parent != parent || doc.VisibleName != name {
			continue
		}
		if found == nil || bytes.Compare(doc.ID[:], found.ID[:]) < 0 {
			found = doc
		}
	}
	return found
}

// PathOf returns the visible names from the top of the hierarchy down to the
// document with the given id. The walk stops at the first parent that is not
// in the index. ok is false when id itself is unknown.
func (idx *Index) PathOf(id uuid.UUID) (path []string, ok bool) {
	doc, ok := idx.byID[id]
	if !ok {
		return nil, false
	}

	seen := map[uuid.UUID]struct{}{}
	for doc != nil {
		if _, loop := seen[doc.ID]; loop {
			break
		}
		seen[doc.ID] = struct{}{}
		path = append(path, doc.VisibleName)

		parentID, isNode := doc.Parent.NodeID()
		if !isNode {
			break
		}
		doc = idx.byID[parentID]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
