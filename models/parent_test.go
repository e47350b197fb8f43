// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParent_RoundTrip(t *testing.T) {
	parents := []Parent{RootParent(), TrashParent()}
	for i := 0; i < 20; i++ {
		parents = append(parents, NodeParent(uuid.New()))
	}

	for _, p := range parents {
		decoded, err := ParseParent(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	}
}

func TestParent_String(t *testing.T) {
	id := uuid.MustParse("9b3ae07c-6c7a-4f3e-8d3c-5a1f2f0c9a11")

	assert.Equal(t, "", RootParent().String())
	assert.Equal(t, "trash", TrashParent().String())
	assert.Equal(t, "9b3ae07c-6c7a-4f3e-8d3c-5a1f2f0c9a11", NodeParent(id).String())
}

func TestParent_ZeroValueIsRoot(t *testing.T) {
	var p Parent
	assert.True(t, p.IsRoot())
	assert.Equal(t, RootParent(), p)
}

func TestParseParent_Malformed(t *testing.T) {
	for _, in := range []string{"Trash", "root", "not-a-uuid", "1234", " trash"} {
		_, err := ParseParent(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrInvalidParent)
	}
}

func TestParent_NodeID(t *testing.T) {
	id := uuid.New()

	got, ok := NodeParent(id).NodeID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = RootParent().NodeID()
	assert.False(t, ok)
	_, ok = TrashParent().NodeID()
	assert.False(t, ok)
}

func TestParent_Equality(t *testing.T) {
	id := uuid.New()

	assert.True(t, NodeParent(id) == NodeParent(id))
	assert.False(t, NodeParent(id) == NodeParent(uuid.New()))
	assert.False(t, RootParent() == TrashParent())
	assert.False(t, NodeParent(uuid.Nil) == RootParent())
}

func TestParent_JSON(t *testing.T) {
	id := uuid.New()
	type wrapper struct {
		Parent Parent `json:"Parent"`
	}

	for _, p := range []Parent{RootParent(), TrashParent(), NodeParent(id)} {
		data, err := json.Marshal(wrapper{Parent: p})
		require.NoError(t, err)

		var got wrapper
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, p, got.Parent)
	}

	var bad wrapper
	err := json.Unmarshal([]byte(`{"Parent":"bogus"}`), &bad)
	assert.ErrorIs(t, err, ErrInvalidParent)

	err = json.Unmarshal([]byte(`{"Parent":42}`), &bad)
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestDocument_DecodeRemoteRecord(t *testing.T) {
	raw := `{
		"ID": "0a2bb6a5-3a35-4c5d-9d0b-2b2f3f3b2a10",
		"Version": 3,
		"Message": "",
		"Success": true,
		"BlobURLGet": "",
		"BlobURLGetExpires": "0001-01-01T00:00:00Z",
		"ModifiedClient": "2021-03-01T10:00:00.000000Z",
		"Type": "CollectionType",
		"VissibleName": "Books",
		"CurrentPage": 0,
		"Bookmarked": false,
		"Parent": "trash"
	}`

	var d Document
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, "Books", d.VisibleName)
	assert.Equal(t, 3, d.Version)
	assert.True(t, d.IsFolder())
	assert.True(t, d.Parent.IsTrash())
}
