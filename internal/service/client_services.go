// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/config"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/store"
	"github.com/MKhiriev/go-rm-cloud/internal/utils"
)

type ClientServices struct {
	AuthService     ClientAuthService
	UploadService   ClientUploadService
	DocumentService ClientDocumentService
}

func NewClientServices(localStore *store.ClientStorages, cloudAdapter adapter.CloudAdapter, app config.ClientApp, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	uploadSvc := NewClientUploadService(cloudAdapter, ids, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(localStore.ClientStateRepository, cloudAdapter, app, ids, logger),
		UploadService:   uploadSvc,
		DocumentService: NewClientDocumentService(cloudAdapter, uploadSvc, logger),
	}
}
