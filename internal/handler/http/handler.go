// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/service"
)

type Handler struct {
	services *service.Services
	pages    *pages
	pageID   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Portal, logger *logger.Logger) (*Handler, error) {
	p, err := newPages()
	if err != nil {
		return nil, err
	}

	pageID := cfg.PageID
	if pageID == "" {
		pageID = "filemover"
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pages:    p,
		pageID:   pageID,
		logger:   logger,
	}, nil
}
