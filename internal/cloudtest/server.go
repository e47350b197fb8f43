// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloudtest runs an in-process imitation of the reMarkable cloud for
// tests: device pairing, user tokens, service discovery, the document
// storage API and presigned blob URLs.
//
// Like the real service it can hand out ids different from the ones a client
// asked for (see [Server.ReassignIDs]) and it rejects blob uploads that carry
// a non-empty Content-Type.
package cloudtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/models"
)

const (
	RegisterPath  = "/token/json/2/device/new"
	TokenPath     = "/token/json/2/user/new"
	DiscoveryPath = "/service/json/1/document-storage"

	signingKey = "cloudtest"
)

// Server is a fake cloud. Exported fields must be set before the first
// request is served.
type Server struct {
	*httptest.Server

	// Code is the one-time pairing code RegisterDevice must present.
	Code string
	// DeviceToken is returned by a successful pairing.
	DeviceToken string
	// TokenTTL is the lifetime of issued user tokens.
	TokenTTL time.Duration
	// ReassignIDs makes upload requests answer with fresh ids.
	ReassignIDs bool

	// OnUploadRequest, when set, replaces the upload-request handler. It
	// returns the JSON value to send.
	OnUploadRequest func(reqs []models.UploadRequest) any
	// OnUpdateStatus, when set, replaces the update-status handler.
	OnUpdateStatus func(reqs []models.UpdateStatusRequest) any

	mu         sync.Mutex
	docs       map[uuid.UUID]models.Document
	blobs      map[uuid.UUID][]byte
	userTokens map[string]bool
	requests   []Request
}

// Request is what the server saw of one call.
type Request struct {
	Method      string
	Path        string
	ContentType []string
	Auth        string
}

// NewServer starts a fake cloud holding docs. Close it when done.
func NewServer(docs ...models.Document) *Server {
	s := &Server{
		Code:        "abcdefgh",
		DeviceToken: "device-token",
		TokenTTL:    time.Hour,
		docs:        make(map[uuid.UUID]models.Document, len(docs)),
		blobs:       make(map[uuid.UUID][]byte),
		userTokens:  make(map[string]bool),
	}
	for _, d := range docs {
		s.docs[d.ID] = d
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Post(RegisterPath, s.handleRegister)
	r.Post(TokenPath, s.handleUserToken)
	r.Get(DiscoveryPath, s.handleDiscovery)

	r.Route("/document-storage/json/2", func(r chi.Router) {
		r.Use(s.requireUserToken)
		r.Get("/docs", s.handleDocs)
		r.Put("/upload/request", s.handleUploadRequest)
		r.Put("/upload/update-status", s.handleUpdateStatus)
	})

	r.Put("/blob/{id}", s.handlePutBlob)
	r.Get("/blob/{id}", s.handleGetBlob)
	return r
}

// URL helpers for client configuration.

func (s *Server) RegisterURL() string  { return s.URL + RegisterPath }
func (s *Server) TokenURL() string     { return s.URL + TokenPath }
func (s *Server) DiscoveryURL() string { return s.URL + DiscoveryPath }

// IssueUserToken mints a user token accepted by the storage endpoints.
func (s *Server) IssueUserToken() string {
	claims := jwt.RegisteredClaims{
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TokenTTL)),
		ID:        uuid.NewString(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))

	s.mu.Lock()
	s.userTokens[token] = true
	s.mu.Unlock()
	return token
}

// Documents returns the stored records ordered by id.
func (s *Server) Documents() []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]models.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID.String() < docs[j].ID.String() })
	return docs
}

// Blob returns the archive stored for id.
func (s *Server) Blob(id uuid.UUID) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[id]
	return b, ok
}

// PutBlob stores an archive for id, as if uploaded earlier.
func (s *Server) PutBlob(id uuid.UUID, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = data
}

// Requests returns every request served so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Values("Content-Type"),
			Auth:        r.Header.Get("Authorization"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireUserToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		s.mu.Lock()
		known := s.userTokens[token]
		s.mu.Unlock()

		if !known {
			http.Error(w, "invalid user token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg models.DeviceRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if reg.Code != s.Code || reg.DeviceID == "" || reg.DeviceDesc == "" {
		http.Error(w, "invalid one-time code", http.StatusBadRequest)
		return
	}
	_, _ = io.WriteString(w, s.DeviceToken)
}

func (s *Server) handleUserToken(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+s.DeviceToken {
		http.Error(w, "invalid device token", http.StatusUnauthorized)
		return
	}
	_, _ = io.WriteString(w, s.IssueUserToken())
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	u, _ := url.Parse(s.URL)
	writeJSON(w, models.StorageHost{Status: models.StorageHostOK, Host: u.Host})
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	withBlob := r.URL.Query().Get("withBlob") != ""
	only := r.URL.Query().Get("doc")

	docs := make([]models.Document, 0)
	for _, d := range s.Documents() {
		if only != "" && d.ID.String() != only {
			continue
		}
		if withBlob {
			d.BlobURLGet = s.blobURL(d.ID)
			d.BlobURLGetExpires = time.Now().Add(time.Hour).UTC()
		}
		docs = append(docs, d)
	}
	writeJSON(w, docs)
}

func (s *Server) handleUploadRequest(w http.ResponseWriter, r *http.Request) {
	var reqs []models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.OnUploadRequest != nil {
		writeJSON(w, s.OnUploadRequest(reqs))
		return
	}

	slots := make([]models.UploadRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		id := req.ID
		if s.ReassignIDs {
			id = uuid.New()
		}

		s.mu.Lock()
		version := s.docs[id].Version + 1
		s.mu.Unlock()

		slots = append(slots, models.UploadRequestResponse{
			ID:                id,
			Version:           version,
			Success:           true,
			BlobURLPut:        s.blobURL(id),
			BlobURLPutExpires: time.Now().Add(time.Hour).UTC(),
		})
	}
	writeJSON(w, slots)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var reqs []models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.OnUpdateStatus != nil {
		writeJSON(w, s.OnUpdateStatus(reqs))
		return
	}

	statuses := make([]models.UpdateStatusResponse, 0, len(reqs))
	for _, req := range reqs {
		s.mu.Lock()
		_, uploaded := s.blobs[req.ID]
		if uploaded {
			s.docs[req.ID] = models.Document{
				ID:             req.ID,
				Version:        req.Version,
				Success:        true,
				ModifiedClient: req.ModifiedClient,
				Type:           req.Type,
				VisibleName:    req.VisibleName,
				Parent:         req.Parent,
			}
		}
		s.mu.Unlock()

		status := models.UpdateStatusResponse{ID: req.ID, Version: req.Version, Success: uploaded}
		if !uploaded {
			status.Message = "no blob uploaded"
		}
		statuses = append(statuses, status)
	}
	writeJSON(w, statuses)
}

func (s *Server) handlePutBlob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if ct := r.Header.Values("Content-Type"); len(ct) != 1 || ct[0] != "" {
		http.Error(w, "SignatureDoesNotMatch", http.StatusForbidden)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.PutBlob(id, data)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetBlob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	data, ok := s.Blob(id)
	if !ok {
		http.Error(w, "NoSuchKey", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	_, _ = w.Write(data)
}

func (s *Server) blobURL(id uuid.UUID) string {
	return s.URL + "/blob/" + id.String() + "?signature=" + uuid.NewString()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
