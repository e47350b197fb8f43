// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/internal/service/servicemock"
	"github.com/MKhiriev/go-rm-cloud/models"
)

type fakeBrowser struct{ calls int }

func (b *fakeBrowser) Browse(context.Context) error {
	b.calls++
	return nil
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) (*App, *servicemock.MockClientAuthService, *servicemock.MockClientDocumentService, *bytes.Buffer) {
	t.Helper()
	auth := servicemock.NewMockClientAuthService(ctrl)
	docs := servicemock.NewMockClientDocumentService(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(&service.ClientServices{AuthService: auth, DocumentService: docs}, &fakeBrowser{},
		models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)
	app.in = strings.NewReader("")
	app.out = out
	return app, auth, docs, out
}

type tree struct {
	books, fiction, dune, todo models.Document
	idx                        *index.Index
}

func newTree() tree {
	var tr tree
	tr.books = models.Document{ID: uuid.New(), VisibleName: "Books", Type: models.CollectionType}
	tr.fiction = models.Document{ID: uuid.New(), VisibleName: "Fiction", Type: models.CollectionType, Parent: models.NodeParent(tr.books.ID)}
	tr.dune = models.Document{ID: uuid.New(), VisibleName: "Dune", Type: models.DocumentType, Parent: models.NodeParent(tr.fiction.ID), Version: 3}
	tr.todo = models.Document{ID: uuid.New(), VisibleName: "Todo", Type: models.DocumentType}
	tr.idx = index.New(tr.books, tr.fiction, tr.dune, tr.todo)
	return tr
}

func TestApp_Run_NoCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, _, out := newTestApp(t, ctrl)

	err := app.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "usage: rmcloud")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, _, _ := newTestApp(t, ctrl)

	err := app.Run(context.Background(), []string{"rm", "Books"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestApp_Run_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, _, out := newTestApp(t, ctrl)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2026-01-02\nBuild commit: abc123\n", out.String())
}

func TestApp_Run_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().Authenticate(gomock.Any()).Return(service.ErrNotRegistered)

	err := app.Run(context.Background(), []string{"ls"})
	assert.ErrorIs(t, err, service.ErrNotRegistered)
	assert.Contains(t, err.Error(), "rmcloud register")
}

// ── register ─────────────────────────────────────────────────────────────────

func TestApp_Register_CodeArgument(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, out := newTestApp(t, ctrl)

	auth.EXPECT().RegisterDevice(gomock.Any(), "abcdefgh").Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "abcdefgh"}))
	assert.Contains(t, out.String(), "device registered")
}

func TestApp_Register_PromptsForCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, out := newTestApp(t, ctrl)
	app.in = strings.NewReader("  qwertyui\n")

	auth.EXPECT().RegisterDevice(gomock.Any(), "qwertyui").Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"register"}))
	assert.Contains(t, out.String(), codePrompt)
}

func TestApp_Register_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().RegisterDevice(gomock.Any(), "abcdefgh").Return(service.ErrInvalidCode)

	err := app.Run(context.Background(), []string{"register", "abcdefgh"})
	assert.ErrorIs(t, err, service.ErrInvalidCode)
}

func TestApp_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
}

// ── ls ───────────────────────────────────────────────────────────────────────

func TestApp_Ls_Root(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().List(gomock.Any(), "/").Return([]models.Document{tr.books, tr.todo}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"ls"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^Books/\s+`+tr.books.ID.String()+`$`, lines[0])
	assert.Regexp(t, `^Todo\s+`+tr.todo.ID.String()+`$`, lines[1])
}

func TestApp_Ls_MissingPathKeepsGoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().List(gomock.Any(), "Nope").Return(nil, fmt.Errorf("%w: Nope", service.ErrDocumentNotFound))
	docs.EXPECT().List(gomock.Any(), "Books").Return([]models.Document{tr.fiction}, nil)

	err := app.Run(context.Background(), []string{"ls", "Nope", "Books"})
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
	assert.Contains(t, out.String(), "cannot find Nope")
	assert.Contains(t, out.String(), tr.fiction.ID.String())
}

func TestApp_Ls_Recursive(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)

	require.NoError(t, app.Run(context.Background(), []string{"ls", "-r", "Books"}))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "/Books  "+tr.books.ID.String()+"\n"))
	assert.Contains(t, got, "Fiction/  "+tr.fiction.ID.String())
	assert.Contains(t, got, "Dune  "+tr.dune.ID.String())
	assert.NotContains(t, got, "Todo")
	// Dune is drawn one level below Fiction.
	assert.Less(t, strings.Index(got, "Fiction/"), strings.Index(got, "Dune"))
}

// ── info ─────────────────────────────────────────────────────────────────────

func TestApp_Info(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)

	err := app.Run(context.Background(), []string{"info", "Books/Fiction/Dune", "Missing"})
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)

	got := out.String()
	assert.Contains(t, got, "/Books/Fiction/Dune")
	assert.Contains(t, got, tr.dune.ID.String())
	assert.Contains(t, got, tr.fiction.ID.String())
	assert.Contains(t, got, "notebook")
	assert.Contains(t, got, "cannot find Missing")
}

func TestApp_Info_NeedsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"info"}), ErrUsage)
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestApp_Pull(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, _ := newTestApp(t, ctrl)
	tr := newTree()
	dir := t.TempDir()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)
	docs.EXPECT().Download(gomock.Any(), tr.dune.ID).Return(tr.dune, []byte("zip-bytes"), nil)

	err := app.Run(context.Background(), []string{"pull", "-o", dir, "Books/Fiction/Dune", "Books"})
	assert.ErrorIs(t, err, errIsFolder)

	data, readErr := os.ReadFile(filepath.Join(dir, "Dune.zip"))
	require.NoError(t, readErr)
	assert.Equal(t, []byte("zip-bytes"), data)
}

func TestApp_Pull_SeveralInParallel(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()
	dir := t.TempDir()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)
	docs.EXPECT().Download(gomock.Any(), tr.dune.ID).Return(tr.dune, []byte("dune"), nil)
	docs.EXPECT().Download(gomock.Any(), tr.todo.ID).Return(tr.todo, []byte("todo"), nil)

	require.NoError(t, app.Run(context.Background(), []string{"pull", "-o", dir, "Books/Fiction/Dune", "Todo"}))

	dune, err := os.ReadFile(filepath.Join(dir, "Dune.zip"))
	require.NoError(t, err)
	assert.Equal(t, []byte("dune"), dune)

	todo, err := os.ReadFile(filepath.Join(dir, "Todo.zip"))
	require.NoError(t, err)
	assert.Equal(t, []byte("todo"), todo)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Books/Fiction/Dune -> " + filepath.Join(dir, "Dune.zip"),
		"Todo -> " + filepath.Join(dir, "Todo.zip"),
	}, lines)
}

func TestApp_Pull_DownloadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, _ := newTestApp(t, ctrl)
	tr := newTree()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)
	docs.EXPECT().Download(gomock.Any(), tr.todo.ID).Return(tr.todo, nil, service.ErrBlobURLExpired)

	err := app.Run(context.Background(), []string{"pull", "-o", t.TempDir(), "Todo"})
	assert.ErrorIs(t, err, service.ErrBlobURLExpired)
}

func TestApp_Pull_SameDocumentTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	tr := newTree()
	dir := t.TempDir()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Index(gomock.Any()).Return(tr.idx, nil)
	docs.EXPECT().Download(gomock.Any(), tr.todo.ID).Return(tr.todo, []byte("todo"), nil).Times(1)

	require.NoError(t, app.Run(context.Background(), []string{"pull", "-o", dir, "Todo", "/Todo"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Todo.zip", entries[0].Name())

	assert.Contains(t, out.String(), "/Todo already queued")
	assert.Contains(t, out.String(), "Todo -> "+filepath.Join(dir, "Todo.zip"))
}

func TestClaimTarget(t *testing.T) {
	id := uuid.MustParse("abcdef12-0000-0000-0000-000000000000")
	first := &models.Document{ID: uuid.New(), VisibleName: "Todo"}
	// A sibling whose visible name matches the disambiguated form.
	lookalike := &models.Document{ID: uuid.New(), VisibleName: "Todo-abcdef12"}
	second := &models.Document{ID: id, VisibleName: "Todo"}
	third := &models.Document{ID: id, VisibleName: "Todo"}

	claimed := map[string]bool{}
	assert.Equal(t, filepath.Join("out", "Todo.zip"), claimTarget(claimed, "out", first))
	assert.Equal(t, filepath.Join("out", "Todo-abcdef12.zip"), claimTarget(claimed, "out", lookalike))
	assert.Equal(t, filepath.Join("out", "Todo-abcdef12-2.zip"), claimTarget(claimed, "out", second))
	assert.Equal(t, filepath.Join("out", "Todo-abcdef12-3.zip"), claimTarget(claimed, "out", third))
	assert.Len(t, claimed, 4)
}

func TestArchiveFileName(t *testing.T) {
	assert.Equal(t, "Dune.zip", archiveFileName("Dune"))
	assert.Equal(t, "a_b.zip", archiveFileName("a/b"))
	assert.Equal(t, "document.zip", archiveFileName(".."))
}

// ── push / mkdir ─────────────────────────────────────────────────────────────

func TestApp_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, out := newTestApp(t, ctrl)
	id := uuid.New()

	archivePath := filepath.Join(t.TempDir(), "notes.zip")
	require.NoError(t, os.WriteFile(archivePath, []byte("zip"), 0o600))

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Push(gomock.Any(), []byte("zip"), "Books/Notes").
		Return(service.UploadResult{ID: id, Version: 1, Phase: service.PhaseDone}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"push", archivePath, "Books/Notes"}))
	assert.Contains(t, out.String(), id.String())
}

func TestApp_Push_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	err := app.Run(context.Background(), []string{"push", filepath.Join(t.TempDir(), "nope.zip"), "Notes"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_Mkdir_PartialUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, docs, _ := newTestApp(t, ctrl)
	id := uuid.New()

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	docs.EXPECT().Mkdir(gomock.Any(), "Books").Return(service.UploadResult{Phase: service.PhaseFailed},
		&service.UploadError{Phase: service.PhaseConfirming, ID: id, Err: service.ErrRemoteProtocol})

	err := app.Run(context.Background(), []string{"mkdir", "Books"})
	assert.ErrorIs(t, err, service.ErrRemoteProtocol)
	assert.Contains(t, err.Error(), "incomplete record "+id.String())
}

func TestApp_Mkdir_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"mkdir"}), ErrUsage)
}

// ── browse ───────────────────────────────────────────────────────────────────

func TestApp_Browse(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, auth, _, _ := newTestApp(t, ctrl)
	browser := &fakeBrowser{}
	app.browser = browser

	auth.EXPECT().Authenticate(gomock.Any()).Return(nil)
	require.NoError(t, app.Run(context.Background(), []string{"browse"}))
	assert.Equal(t, 1, browser.calls)
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, nil, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestDescribeUploadError_RequestingIsUnchanged(t *testing.T) {
	err := &service.UploadError{Phase: service.PhaseRequesting, Err: errors.New("refused")}
	assert.Same(t, error(err), describeUploadError(err))
}
