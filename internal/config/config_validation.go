// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// deviceDescs are the device classes the pairing endpoint accepts.
var deviceDescs = []any{
	"desktop-windows",
	"desktop-macos",
	"desktop-linux",
	"mobile-android",
	"mobile-ios",
	"browser-chrome",
	"remarkable",
}

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks the final [ClientConfig] before it is used at startup. The
// first invalid group is reported through its ErrInvalid*Configs sentinel.
func (cfg *ClientConfig) validate() error {
	db := &cfg.Storage.DB
	if err := validation.ValidateStruct(db,
		validation.Field(&db.DSN, validation.Required, validation.By(notInMemory)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	a := &cfg.Adapter
	if err := validation.ValidateStruct(a,
		validation.Field(&a.RegisterURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&a.TokenURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&a.DiscoveryURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&a.StorageHost, validation.By(absoluteURL)),
		validation.Field(&a.RequestTimeout, validation.Required, validation.Min(time.Second)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	app := &cfg.App
	if err := validation.ValidateStruct(app,
		validation.Field(&app.DeviceDesc, validation.Required, validation.In(deviceDescs...)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	l := &cfg.Log
	if err := validation.ValidateStruct(l,
		validation.Field(&l.Level, validation.In(logLevels...)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func notInMemory(value any) error {
	dsn, _ := value.(string)
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return errors.New("in-memory databases do not persist the session")
	}
	return nil
}

func absoluteURL(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}
