// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/models"
)

type clientDocumentService struct {
	adapter adapter.CloudAdapter
	uploads ClientUploadService
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientDocumentService(cloudAdapter adapter.CloudAdapter, uploads ClientUploadService, logger *logger.Logger) ClientDocumentService {
	return &clientDocumentService{
		adapter: cloudAdapter,
		uploads: uploads,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *clientDocumentService) Index(ctx context.Context) (*index.Index, error) {
	docs, err := s.adapter.ListDocuments(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", mapAdapterError(err))
	}

	s.logger.Debug().
		Str("func", "clientDocumentService.Index").
		Int("documents", len(docs)).
		Msg("document list fetched")
	return index.InsertAll(docs), nil
}

func (s *clientDocumentService) Lookup(ctx context.Context, path string) (models.Document, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc, ok := idx.ResolvePath(index.SplitPath(path))
	if !ok {
		return models.Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	return *doc, nil
}

func (s *clientDocumentService) List(ctx context.Context, path string) ([]models.Document, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	parent := models.RootParent()
	if components := index.SplitPath(path); len(components) > 0 {
		doc, ok := idx.ResolvePath(components)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		if !doc.IsFolder() {
			return []models.Document{*doc}, nil
		}
		parent = models.NodeParent(doc.ID)
	}

	children := idx.Children(parent)
	docs := make([]models.Document, 0, len(children))
	for _, child := range children {
		docs = append(docs, *child)
	}
	return docs, nil
}

// Fetch implements [ClientDocumentService]. The cloud answers with a list
// even for a single id; only the record carrying that id is returned.
func (s *clientDocumentService) Fetch(ctx context.Context, id uuid.UUID) (models.Document, error) {
	docs, err := s.adapter.GetDocument(ctx, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("get document %s: %w", id, mapAdapterError(err))
	}

	doc, ok := index.InsertAll(docs).Remove(id)
	if !ok {
		return models.Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return doc, nil
}

func (s *clientDocumentService) Download(ctx context.Context, id uuid.UUID) (models.Document, []byte, error) {
	doc, err := s.Fetch(ctx, id)
	if err != nil {
		return models.Document{}, nil, err
	}
	if doc.BlobURLExpired(s.now()) {
		return doc, nil, fmt.Errorf("%w: %s", ErrBlobURLExpired, id)
	}

	data, err := s.adapter.GetBlob(ctx, doc.BlobURLGet)
	if err != nil {
		return doc, nil, fmt.Errorf("download %s: %w", id, mapAdapterError(err))
	}

	s.logger.Debug().
		Str("func", "clientDocumentService.Download").
		Str("document_id", id.String()).
		Int("bytes", len(data)).
		Msg("archive downloaded")
	return doc, data, nil
}

func (s *clientDocumentService) Mkdir(ctx context.Context, path string) (UploadResult, error) {
	parent, name, err := s.placement(ctx, path)
	if err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}
	return s.uploads.CreateFolder(ctx, models.NewFolderDraft(uuid.Nil, name, parent))
}

func (s *clientDocumentService) Push(ctx context.Context, archive []byte, path string) (UploadResult, error) {
	parent, name, err := s.placement(ctx, path)
	if err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}
	return s.uploads.UploadNotebook(ctx, models.NewNotebookDraft(uuid.Nil, name, parent), archive)
}

// placement splits path into the folder a new record goes to and its
// visible name. The folder must exist.
func (s *clientDocumentService) placement(ctx context.Context, path string) (models.Parent, string, error) {
	components := index.SplitPath(path)
	if len(components) == 0 {
		return models.Parent{}, "", fmt.Errorf("%w: empty path", ErrInvalidName)
	}
	name := components[len(components)-1]
	if len(components) == 1 {
		return models.RootParent(), name, nil
	}

	idx, err := s.Index(ctx)
	if err != nil {
		return models.Parent{}, "", err
	}

	dir := components[:len(components)-1]
	doc, ok := idx.ResolvePath(dir)
	if !ok {
		return models.Parent{}, "", fmt.Errorf("%w: %s", ErrDocumentNotFound, strings.Join(dir, "/"))
	}
	if !doc.IsFolder() {
		return models.Parent{}, "", fmt.Errorf("%w: %s", ErrNotAFolder, strings.Join(dir, "/"))
	}
	return models.NodeParent(doc.ID), name, nil
}
