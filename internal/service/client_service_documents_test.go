// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/mock"
	"github.com/MKhiriev/go-rm-cloud/models"
)

// library is Root → Books → Fiction → Dune, plus a root notebook Todo.
type library struct {
	books, fiction, dune, todo models.Document
}

func (l library) docs() []models.Document {
	return []models.Document{l.dune, l.todo, l.fiction, l.books}
}

func newLibrary() library {
	var l library
	l.books = models.Document{ID: uuid.New(), VisibleName: "Books", Type: models.CollectionType, Success: true}
	l.fiction = models.Document{ID: uuid.New(), VisibleName: "Fiction", Type: models.CollectionType, Parent: models.NodeParent(l.books.ID), Success: true}
	l.dune = models.Document{ID: uuid.New(), VisibleName: "Dune", Type: models.DocumentType, Parent: models.NodeParent(l.fiction.ID), Success: true}
	l.todo = models.Document{ID: uuid.New(), VisibleName: "Todo", Type: models.DocumentType, Success: true}
	return l
}

func newTestDocumentSvc(t *testing.T, ctrl *gomock.Controller) (*clientDocumentService, *mock.MockCloudAdapter, *clientUploadService) {
	t.Helper()
	uploads, mockAdapter := newTestUploadSvc(t, ctrl)

	svc := NewClientDocumentService(mockAdapter, uploads, logger.Nop()).(*clientDocumentService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mockAdapter, uploads
}

// ── Lookup / List ────────────────────────────────────────────────────────────

func TestClientDocumentService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	lib := newLibrary()

	mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).Return(lib.docs(), nil).Times(3)

	doc, err := svc.Lookup(context.Background(), "/Books/Fiction/Dune")
	require.NoError(t, err)
	assert.Equal(t, lib.dune, doc)

	_, err = svc.Lookup(context.Background(), "Books/Dune")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = svc.Lookup(context.Background(), "/")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestClientDocumentService_Lookup_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)

	mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).
		Return(nil, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	_, err := svc.Lookup(context.Background(), "Books")
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientDocumentService_List(t *testing.T) {
	lib := newLibrary()

	tests := []struct {
		path    string
		want    []models.Document
		wantErr error
	}{
		{path: "/", want: sortedByID(lib.books, lib.todo)},
		{path: "", want: sortedByID(lib.books, lib.todo)},
		{path: "Books", want: []models.Document{lib.fiction}},
		{path: "/Books/Fiction/", want: []models.Document{lib.dune}},
		{path: "Books/Fiction/Dune", want: []models.Document{lib.dune}},
		{path: "Nope", wantErr: ErrDocumentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
			mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).Return(lib.docs(), nil)

			got, err := svc.List(context.Background(), tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sortedByID(docs ...models.Document) []models.Document {
	if len(docs) == 2 && docs[1].ID.String() < docs[0].ID.String() {
		docs[0], docs[1] = docs[1], docs[0]
	}
	return docs
}

// ── Fetch / Download ─────────────────────────────────────────────────────────

func TestClientDocumentService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	lib := newLibrary()

	dune := lib.dune
	dune.BlobURLGet = "https://blobs.example/dune"
	mockAdapter.EXPECT().GetDocument(gomock.Any(), dune.ID).Return([]models.Document{lib.todo, dune}, nil)

	got, err := svc.Fetch(context.Background(), dune.ID)
	require.NoError(t, err)
	assert.Equal(t, dune, got)
}

func TestClientDocumentService_Fetch_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	id := uuid.New()

	mockAdapter.EXPECT().GetDocument(gomock.Any(), id).Return([]models.Document{}, nil)
	_, err := svc.Fetch(context.Background(), id)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	mockAdapter.EXPECT().GetDocument(gomock.Any(), id).Return(nil, fmt.Errorf("%w: gone", adapter.ErrNotFound))
	_, err = svc.Fetch(context.Background(), id)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestClientDocumentService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)

	doc := newLibrary().dune
	doc.BlobURLGet = "https://blobs.example/dune"
	doc.BlobURLGetExpires = fixedNow.Add(time.Minute)

	gomock.InOrder(
		mockAdapter.EXPECT().GetDocument(gomock.Any(), doc.ID).Return([]models.Document{doc}, nil),
		mockAdapter.EXPECT().GetBlob(gomock.Any(), doc.BlobURLGet).Return([]byte("zip"), nil),
	)

	got, data, err := svc.Download(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, []byte("zip"), data)
}

func TestClientDocumentService_Download_ExpiredURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)

	doc := newLibrary().dune
	doc.BlobURLGet = "https://blobs.example/dune"
	doc.BlobURLGetExpires = fixedNow.Add(-time.Second)

	mockAdapter.EXPECT().GetDocument(gomock.Any(), doc.ID).Return([]models.Document{doc}, nil)

	_, _, err := svc.Download(context.Background(), doc.ID)
	assert.ErrorIs(t, err, ErrBlobURLExpired)
}

// ── Mkdir / Push ─────────────────────────────────────────────────────────────

func TestClientDocumentService_Mkdir_UnderFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	lib := newLibrary()
	assigned := uuid.New()

	mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).Return(lib.docs(), nil)
	mockAdapter.EXPECT().RequestUpload(gomock.Any(), gomock.Any()).Return([]models.UploadRequestResponse{slotFor(assigned)}, nil)
	mockAdapter.EXPECT().PutBlob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockAdapter.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs []models.UpdateStatusRequest) ([]models.UpdateStatusResponse, error) {
			assert.Equal(t, "SciFi", reqs[0].VisibleName)
			assert.Equal(t, models.NodeParent(lib.fiction.ID), reqs[0].Parent)
			assert.Equal(t, models.CollectionType, reqs[0].Type)
			return []models.UpdateStatusResponse{{ID: assigned, Version: 1, Success: true}}, nil
		},
	)

	result, err := svc.Mkdir(context.Background(), "Books/Fiction/SciFi")
	require.NoError(t, err)
	assert.Equal(t, assigned, result.ID)
}

func TestClientDocumentService_Mkdir_AtRootSkipsListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	assigned := uuid.New()

	mockAdapter.EXPECT().RequestUpload(gomock.Any(), gomock.Any()).Return([]models.UploadRequestResponse{slotFor(assigned)}, nil)
	mockAdapter.EXPECT().PutBlob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockAdapter.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs []models.UpdateStatusRequest) ([]models.UpdateStatusResponse, error) {
			assert.True(t, reqs[0].Parent.IsRoot())
			return []models.UpdateStatusResponse{{ID: assigned, Version: 1, Success: true}}, nil
		},
	)

	_, err := svc.Mkdir(context.Background(), "/Archive/")
	require.NoError(t, err)
}

func TestClientDocumentService_Placement_Errors(t *testing.T) {
	lib := newLibrary()

	tests := []struct {
		path    string
		list    bool
		wantErr error
	}{
		{path: "/", wantErr: ErrInvalidName},
		{path: "Missing/New", list: true, wantErr: ErrDocumentNotFound},
		{path: "Todo/New", list: true, wantErr: ErrNotAFolder},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
			if tt.list {
				mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).Return(lib.docs(), nil)
			}

			result, err := svc.Mkdir(context.Background(), tt.path)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, PhaseFailed, result.Phase)
		})
	}
}

func TestClientDocumentService_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestDocumentSvc(t, ctrl)
	lib := newLibrary()
	assigned := uuid.New()

	mockAdapter.EXPECT().ListDocuments(gomock.Any(), false).Return(lib.docs(), nil)
	mockAdapter.EXPECT().RequestUpload(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs []models.UploadRequest) ([]models.UploadRequestResponse, error) {
			assert.Equal(t, models.DocumentType, reqs[0].Type)
			return []models.UploadRequestResponse{slotFor(assigned)}, nil
		},
	)
	mockAdapter.EXPECT().PutBlob(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body []byte) error {
			assert.Equal(t, assigned, primaryID(t, body))
			return nil
		},
	)
	mockAdapter.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs []models.UpdateStatusRequest) ([]models.UpdateStatusResponse, error) {
			assert.Equal(t, "Dune 2", reqs[0].VisibleName)
			assert.Equal(t, models.NodeParent(lib.fiction.ID), reqs[0].Parent)
			return []models.UpdateStatusResponse{{ID: assigned, Version: 1, Success: true}}, nil
		},
	)

	result, err := svc.Push(context.Background(), notebookArchive(t, uuid.New()), "Books/Fiction/Dune 2")
	require.NoError(t, err)
	assert.Equal(t, assigned, result.ID)
}
