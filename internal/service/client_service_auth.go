// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/config"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/store"
	"github.com/MKhiriev/go-rm-cloud/internal/utils"
	"github.com/MKhiriev/go-rm-cloud/models"
)

// tokenLeeway is how long before expiry a user token is replaced.
const tokenLeeway = time.Minute

var oneTimeCode = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type clientAuthService struct {
	states  store.ClientStateRepository
	adapter adapter.CloudAdapter
	app     config.ClientApp
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientAuthService(states store.ClientStateRepository, cloudAdapter adapter.CloudAdapter, app config.ClientApp, ids IDGenerator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		states:  states,
		adapter: cloudAdapter,
		app:     app,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

func (a *clientAuthService) RegisterDevice(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if err := validation.Validate(code, validation.Required, validation.Length(8, 8), validation.Match(oneTimeCode)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	deviceID := a.app.DeviceID
	if deviceID == "" {
		deviceID = a.ids.Generate().String()
	}

	token, err := a.adapter.RegisterDevice(ctx, models.DeviceRegistration{
		Code:       code,
		DeviceDesc: a.app.DeviceDesc,
		DeviceID:   deviceID,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrBadRequest) {
			return fmt.Errorf("%w: %w", ErrInvalidCode, err)
		}
		return fmt.Errorf("register device: %w", mapAdapterError(err))
	}

	// A new device token invalidates whatever session was stored before.
	if err = a.states.Save(ctx, models.ClientState{DeviceToken: token}); err != nil {
		return fmt.Errorf("save device token: %w", err)
	}

	a.logger.Info().
		Str("func", "clientAuthService.RegisterDevice").
		Str("device_id", deviceID).
		Msg("device registered")
	return nil
}

func (a *clientAuthService) Authenticate(ctx context.Context) error {
	state, err := a.states.Load(ctx)
	if errors.Is(err, store.ErrClientStateNotFound) {
		return ErrNotRegistered
	}
	if err != nil {
		return fmt.Errorf("load client state: %w", err)
	}
	if !state.IsRegistered() {
		return ErrNotRegistered
	}

	changed := false
	if utils.TokenExpiresWithin(state.UserToken, a.now(), tokenLeeway) {
		token, err := a.adapter.RefreshUserToken(ctx, state.DeviceToken)
		if err != nil {
			return fmt.Errorf("refresh user token: %w", mapAdapterError(err))
		}
		state.UserToken = token
		changed = true

		a.logger.Debug().
			Str("func", "clientAuthService.Authenticate").
			Msg("user token refreshed")
	}

	// A configured storage host wins and is not persisted.
	endpoint := a.adapter.StorageHost()
	if endpoint == "" && state.Endpoint == "" {
		discovered, err := a.adapter.DiscoverStorageHost(ctx)
		if err != nil {
			return fmt.Errorf("discover storage host: %w", mapAdapterError(err))
		}
		state.Endpoint = discovered
		changed = true

		a.logger.Debug().
			Str("func", "clientAuthService.Authenticate").
			Str("url", discovered).
			Msg("storage host discovered")
	}
	if endpoint == "" {
		endpoint = state.Endpoint
	}

	if changed {
		if err = a.states.Save(ctx, state); err != nil {
			return fmt.Errorf("save client state: %w", err)
		}
	}

	if err = a.adapter.SetStorageHost(endpoint); err != nil {
		return fmt.Errorf("%w: storage host %q: %v", ErrRemoteProtocol, endpoint, err)
	}
	a.adapter.SetToken(state.UserToken)
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.states.Clear(ctx); err != nil {
		return fmt.Errorf("clear client state: %w", err)
	}
	a.adapter.SetToken("")
	return nil
}
