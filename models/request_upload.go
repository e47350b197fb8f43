package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadRequestVersion is the version sent when asking for a new upload slot.
const UploadRequestVersion = 1

// UploadRequest asks the remote for a signed blob URL for one record.
// The endpoint takes a JSON array of these.
type UploadRequest struct {
	// ID is the identifier proposed by the client.
	ID uuid.UUID `json:"ID"`

	// Type selects notebook or folder semantics.
	Type DocType `json:"Type"`

	// Version is always UploadRequestVersion for a fresh record.
	Version int `json:"Version"`
}

// NewUploadRequest builds the upload request for d.
func NewUploadRequest(d Draft) UploadRequest {
	return UploadRequest{ID: d.ID, Type: d.Type, Version: UploadRequestVersion}
}

// UploadRequestResponse is one element of the upload request response array.
type UploadRequestResponse struct {
	// ID is the identifier the server will use. It may differ from the one
	// that was requested.
	ID uuid.UUID `json:"ID"`

	// Version must be echoed back in the update-status request.
	Version int `json:"Version"`

	// Message carries the server's explanation on failure.
	Message string `json:"Message"`

	// Success is false when the server refused the slot.
	Success bool `json:"Success"`

	// BlobURLPut is the single-use signed URL the archive must be PUT to.
	BlobURLPut string `json:"BlobURLPut"`

	// BlobURLPutExpires is the expiry of BlobURLPut.
	BlobURLPutExpires time.Time `json:"BlobURLPutExpires"`
}
