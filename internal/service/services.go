// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/identity"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/masthead"
)

type Services struct {
	AppInfoService  AppInfoService
	MastheadService MastheadService
	UserService     UserService
	CommandService  CommandService
	JobService      JobService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	resolver, err := identity.NewClient(cfg.Identity, logger)
	if err != nil {
		return nil, fmt.Errorf("create identity client: %w", err)
	}

	builder, err := masthead.NewBuilder(resolver, cfg.Masthead, cfg.Identity, logger)
	if err != nil {
		return nil, fmt.Errorf("create masthead builder: %w", err)
	}

	registry := dispatch.NewRegistry(cfg.FileMover.BasePath)
	dispatcher, err := dispatch.NewHTTPDispatcher(cfg.FileMover, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("create filemover dispatcher: %w", err)
	}

	jobs, err := NewJobService(dispatcher, cfg.FileMover, logger)
	if err != nil {
		return nil, fmt.Errorf("create job service: %w", err)
	}

	return &Services{
		AppInfoService:  appInfo,
		MastheadService: builder,
		UserService:     NewUserService(resolver, logger),
		CommandService:  NewCommandService(registry, dispatcher, logger),
		JobService:      jobs,
	}, nil
}
