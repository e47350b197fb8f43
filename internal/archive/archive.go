// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive handles the zip bundles the cloud stores for every
// document.
//
// Every entry of a bundle is named after the document id followed by a
// suffix or a sub-path, e.g. "<id>.content", "<id>.pagedata" or
// "<id>/0.rm". A bundle produced for one id has to be rekeyed before it can
// be stored under another one.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ContentSuffix marks the entry that identifies the document of a bundle.
const ContentSuffix = ".content"

// emptyContent is the payload of a synthesized .content entry.
var emptyContent = []byte("{}")

// Open parses data as a zip archive.
func Open(data []byte) (*zip.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	return r, nil
}

// FindPrimaryID returns the id of the first entry, in stored order, whose
// name ends with ContentSuffix. The stem must be the canonical lowercase
// hyphenated form of the id, the only form Rekey can substitute.
func FindPrimaryID(r *zip.Reader) (uuid.UUID, error) {
	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ContentSuffix) {
			continue
		}
		stem := strings.TrimSuffix(f.Name, ContentSuffix)
		id, err := uuid.Parse(stem)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: entry %q: %v", ErrInvalidArchive, f.Name, err)
		}
		if stem != id.String() {
			return uuid.Nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidArchive, f.Name, ErrNonCanonicalID)
		}
		return id, nil
	}
	return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidArchive, ErrNoPrimaryEntry)
}

// Rekey rebuilds r so that every entry name has each occurrence of the
// primary id's canonical form replaced by newID. Entry payloads are copied
// as stored, without recompression, and entry order is preserved.
func Rekey(newID uuid.UUID, r *zip.Reader) ([]byte, error) {
	oldID, err := FindPrimaryID(r)
	if err != nil {
		return nil, err
	}
	oldKey, newKey := oldID.String(), newID.String()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range r.File {
		header := f.FileHeader
		header.Name = strings.ReplaceAll(f.Name, oldKey, newKey)
		if err := copyRaw(w, f, &header); err != nil {
			return nil, fmt.Errorf("%w: copy entry %q: %v", ErrInvalidArchive, f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// RekeyBytes opens data and rekeys it to newID.
func RekeyBytes(newID uuid.UUID, data []byte) ([]byte, error) {
	r, err := Open(data)
	if err != nil {
		return nil, err
	}
	return Rekey(newID, r)
}

// SynthesizeEmpty builds the minimal bundle the cloud accepts for a record
// without content of its own, such as a folder.
func SynthesizeEmpty(id uuid.UUID) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create(id.String() + ContentSuffix)
	if err != nil {
		return nil, fmt.Errorf("create content entry: %w", err)
	}
	if _, err = f.Write(emptyContent); err != nil {
		return nil, fmt.Errorf("write content entry: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func copyRaw(w *zip.Writer, f *zip.File, header *zip.FileHeader) error {
	src, err := f.OpenRaw()
	if err != nil {
		return err
	}
	dst, err := w.CreateRaw(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
