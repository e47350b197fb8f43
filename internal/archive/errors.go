// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import "errors"

var (
	ErrInvalidArchive = errors.New("invalid document archive")
	ErrNoPrimaryEntry = errors.New("archive has no " + ContentSuffix + " entry")
	ErrNonCanonicalID = errors.New("entry id is not in canonical form")
)
