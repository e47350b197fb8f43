// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrNotRegistered, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrDocumentNotFound, err)

	case errors.Is(err, adapter.ErrDiscoveryNotOK),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrRemoteProtocol, err)
	}

	return err
}
