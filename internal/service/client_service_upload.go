// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/archive"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/models"
)

// UploadPhase is a step of the upload protocol.
type UploadPhase int

const (
	PhaseRequesting UploadPhase = iota
	PhaseUploading
	PhaseConfirming
	PhaseDone
	PhaseFailed
)

func (p UploadPhase) String() string {
	switch p {
	case PhaseRequesting:
		return "requesting"
	case PhaseUploading:
		return "uploading"
	case PhaseConfirming:
		return "confirming"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("UploadPhase(%d)", int(p))
	}
}

// UploadError reports the phase an upload stopped in. Records created by
// earlier phases are left on the cloud.
type UploadError struct {
	Phase UploadPhase
	// ID is the id the record had when the phase failed: the proposed one
	// while requesting, the confirmed one afterwards.
	ID  uuid.UUID
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %s failed while %s: %v", e.ID, e.Phase, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// UploadResult describes a finished upload.
type UploadResult struct {
	// ID is the id the cloud confirmed. It may differ from the draft's.
	ID      uuid.UUID
	Version int
	Phase   UploadPhase
}

type clientUploadService struct {
	adapter adapter.CloudAdapter
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientUploadService(cloudAdapter adapter.CloudAdapter, ids IDGenerator, logger *logger.Logger) ClientUploadService {
	return &clientUploadService{
		adapter: cloudAdapter,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

// UploadNotebook implements [ClientUploadService]. The archive is checked
// before a slot is requested so that a broken file does not leave a
// placeholder record behind.
func (s *clientUploadService) UploadNotebook(ctx context.Context, draft models.Draft, data []byte) (UploadResult, error) {
	if err := validateDraft(draft); err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}

	r, err := archive.Open(data)
	if err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}
	if _, err = archive.FindPrimaryID(r); err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}

	draft.Type = models.DocumentType
	return s.upload(ctx, draft, func(id uuid.UUID) ([]byte, error) {
		return archive.Rekey(id, r)
	})
}

// CreateFolder implements [ClientUploadService]. Folders are uploaded as an
// archive holding nothing but an empty content entry.
func (s *clientUploadService) CreateFolder(ctx context.Context, draft models.Draft) (UploadResult, error) {
	if err := validateDraft(draft); err != nil {
		return UploadResult{Phase: PhaseFailed}, err
	}

	draft.Type = models.CollectionType
	return s.upload(ctx, draft, archive.SynthesizeEmpty)
}

func (s *clientUploadService) upload(ctx context.Context, draft models.Draft, payload func(uuid.UUID) ([]byte, error)) (UploadResult, error) {
	if draft.ID == uuid.Nil {
		draft = draft.WithID(s.ids.Generate())
	}
	log := s.logger.With().
		Str("func", "clientUploadService.upload").
		Str("visible_name", draft.VisibleName).
		Str("type", string(draft.Type)).
		Logger()

	slot, err := s.request(ctx, draft)
	if err != nil {
		log.Err(err).Str("document_id", draft.ID.String()).Str("phase", PhaseRequesting.String()).Msg("upload failed")
		return UploadResult{Phase: PhaseFailed}, &UploadError{Phase: PhaseRequesting, ID: draft.ID, Err: err}
	}

	confirmed := draft.WithID(slot.ID)
	if confirmed.ID != draft.ID {
		log.Debug().
			Str("proposed_id", draft.ID.String()).
			Str("document_id", confirmed.ID.String()).
			Msg("cloud assigned a different id")
	}

	if err = s.put(ctx, confirmed, slot, payload); err != nil {
		log.Err(err).Str("document_id", confirmed.ID.String()).Str("phase", PhaseUploading.String()).Msg("upload failed")
		return UploadResult{Phase: PhaseFailed}, &UploadError{Phase: PhaseUploading, ID: confirmed.ID, Err: err}
	}

	status, err := s.confirm(ctx, confirmed, slot)
	if err != nil {
		log.Err(err).Str("document_id", confirmed.ID.String()).Str("phase", PhaseConfirming.String()).Msg("upload failed")
		return UploadResult{Phase: PhaseFailed}, &UploadError{Phase: PhaseConfirming, ID: confirmed.ID, Err: err}
	}

	result := UploadResult{ID: status.ID, Version: status.Version, Phase: PhaseDone}
	if result.ID == uuid.Nil {
		result.ID = confirmed.ID
	}
	if result.Version == 0 {
		result.Version = slot.Version
	}

	log.Info().Str("document_id", result.ID.String()).Int("version", result.Version).Msg("upload done")
	return result, nil
}

// request asks for an upload slot for draft.
func (s *clientUploadService) request(ctx context.Context, draft models.Draft) (models.UploadRequestResponse, error) {
	slots, err := s.adapter.RequestUpload(ctx, []models.UploadRequest{models.NewUploadRequest(draft)})
	if err != nil {
		return models.UploadRequestResponse{}, mapAdapterError(err)
	}

	if len(slots) == 0 {
		return models.UploadRequestResponse{}, fmt.Errorf("%w: empty upload request response", ErrRemoteProtocol)
	}
	if len(slots) > 1 {
		s.logger.Warn().
			Str("func", "clientUploadService.request").
			Int("records", len(slots)).
			Msg("expected one upload slot, using the last")
	}

	slot := slots[len(slots)-1]
	if !slot.Success {
		return models.UploadRequestResponse{}, fmt.Errorf("%w: upload request refused: %s", ErrRemoteProtocol, slot.Message)
	}
	if slot.ID == uuid.Nil || slot.BlobURLPut == "" {
		return models.UploadRequestResponse{}, fmt.Errorf("%w: upload slot without id or url", ErrRemoteProtocol)
	}
	return slot, nil
}

// put rekeys the payload to the confirmed id and uploads it.
func (s *clientUploadService) put(ctx context.Context, draft models.Draft, slot models.UploadRequestResponse, payload func(uuid.UUID) ([]byte, error)) error {
	data, err := payload(draft.ID)
	if err != nil {
		return fmt.Errorf("prepare archive: %w", err)
	}

	if err = s.adapter.PutBlob(ctx, slot.BlobURLPut, data); err != nil {
		if errors.Is(err, adapter.ErrTransport) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRemoteProtocol, err)
	}
	return nil
}

// confirm submits the metadata of the uploaded record. Exactly one
// successful status record is accepted.
func (s *clientUploadService) confirm(ctx context.Context, draft models.Draft, slot models.UploadRequestResponse) (models.UpdateStatusResponse, error) {
	req := models.NewUpdateStatusRequest(draft, slot, s.now())

	statuses, err := s.adapter.UpdateStatus(ctx, []models.UpdateStatusRequest{req})
	if err != nil {
		return models.UpdateStatusResponse{}, mapAdapterError(err)
	}

	if len(statuses) != 1 {
		s.logger.Error().
			Str("func", "clientUploadService.confirm").
			Str("document_id", draft.ID.String()).
			Int("records", len(statuses)).
			Msg("expected exactly one update status record")
		return models.UpdateStatusResponse{}, fmt.Errorf("%w: got %d update status records", ErrRemoteProtocol, len(statuses))
	}

	status := statuses[0]
	if !status.Success {
		return models.UpdateStatusResponse{}, fmt.Errorf("%w: update status refused: %s", ErrRemoteProtocol, status.Message)
	}
	return status, nil
}

func validateDraft(draft models.Draft) error {
	err := validation.Validate(draft.VisibleName,
		validation.Required,
		validation.Length(1, 255),
		validation.By(func(value any) error {
			if strings.Contains(value.(string), "/") {
				return errors.New("must not contain '/'")
			}
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidName, draft.VisibleName, err)
	}
	return nil
}
