// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidParent is returned when a wire parent value is neither empty,
// "trash", nor a canonical UUID string.
var ErrInvalidParent = errors.New("invalid parent reference")

// TrashParentValue is the wire value the remote uses for the trash bin.
const TrashParentValue = "trash"

type parentKind uint8

const (
	parentRoot parentKind = iota
	parentTrash
	parentNode
)

// Parent locates a document in the hierarchy: the root, the trash bin, or a
// specific folder. The zero value is the root.
//
// Parent is comparable; two values are equal when they reference the same
// variant and, for folders, the same id.
type Parent struct {
	kind parentKind
	id   uuid.UUID
}

// RootParent returns the parent of top-level documents.
func RootParent() Parent {
	return Parent{kind: parentRoot}
}

// TrashParent returns the parent of trashed documents.
func TrashParent() Parent {
	return Parent{kind: parentTrash}
}

// NodeParent returns a parent referencing the folder with the given id.
func NodeParent(id uuid.UUID) Parent {
	return Parent{kind: parentNode, id: id}
}

// IsRoot reports whether p is the root.
func (p Parent) IsRoot() bool { return p.kind == parentRoot }

// IsTrash reports whether p is the trash bin.
func (p Parent) IsTrash() bool { return p.kind == parentTrash }

// NodeID returns the folder id when p references a folder.
func (p Parent) NodeID() (uuid.UUID, bool) {
	if p.kind != parentNode {
		return uuid.Nil, false
	}
	return p.id, true
}

// String returns the wire encoding of p: "" for the root, "trash" for the
// trash bin and the canonical UUID string for a folder.
func (p Parent) String() string {
	switch p.kind {
	case parentTrash:
		return TrashParentValue
	case parentNode:
		return p.id.String()
	default:
		return ""
	}
}

// ParseParent decodes the wire encoding produced by [Parent.String].
func ParseParent(s string) (Parent, error) {
	switch s {
	case "":
		return RootParent(), nil
	case TrashParentValue:
		return TrashParent(), nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return Parent{}, fmt.Errorf("%w %q: %v", ErrInvalidParent, s, err)
	}
	return NodeParent(id), nil
}

// MarshalJSON encodes p as its wire string.
func (p Parent) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a wire string into p.
func (p *Parent) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParent, err)
	}

	parsed, err := ParseParent(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
