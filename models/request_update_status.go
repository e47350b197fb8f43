package models

import (
	"time"

	"github.com/google/uuid"
)

// UpdateStatusRequest confirms the metadata of a record whose archive has
// been uploaded. The endpoint takes a JSON array of these.
type UpdateStatusRequest struct {
	ID             uuid.UUID `json:"ID"`
	Parent         Parent    `json:"Parent"`
	VisibleName    string    `json:"VissibleName"`
	Type           DocType   `json:"Type"`
	Version        int       `json:"Version"`
	ModifiedClient time.Time `json:"ModifiedClient"`
}

// NewUpdateStatusRequest builds the confirmation for d using the version
// handed out with the upload slot.
func NewUpdateStatusRequest(d Draft, slot UploadRequestResponse, modified time.Time) UpdateStatusRequest {
	return UpdateStatusRequest{
		ID:             d.ID,
		Parent:         d.Parent,
		VisibleName:    d.VisibleName,
		Type:           d.Type,
		Version:        slot.Version,
		ModifiedClient: modified.UTC(),
	}
}

// UpdateStatusResponse is one element of the update-status response array.
type UpdateStatusResponse struct {
	ID      uuid.UUID `json:"ID"`
	Version int       `json:"Version"`
	Message string    `json:"Message"`
	Success bool      `json:"Success"`
}
