package store

import (
	"context"

	"github.com/MKhiriev/go-rm-cloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_state_repository_mock.go -package=mock

// ClientStateRepository persists the session of the single local client.
type ClientStateRepository interface {
	// Load returns the stored state, or ErrClientStateNotFound before the
	// first Save.
	Load(ctx context.Context) (models.ClientState, error)

	// Save replaces the stored state.
	Save(ctx context.Context, state models.ClientState) error

	// Clear forgets the stored state, e.g. to pair again.
	Clear(ctx context.Context) error
}
