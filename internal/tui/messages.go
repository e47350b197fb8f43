package tui

import "github.com/MKhiriev/go-rm-cloud/internal/index"

type indexLoadedMsg struct {
	idx *index.Index
	err error
}

type copiedMsg struct {
	text string
	err  error
}
