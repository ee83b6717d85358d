// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
)

type commandService struct {
	registry   *dispatch.Registry
	dispatcher dispatch.Dispatcher

	logger *logger.Logger
}

func NewCommandService(registry *dispatch.Registry, dispatcher dispatch.Dispatcher, logger *logger.Logger) CommandService {
	return &commandService{registry: registry, dispatcher: dispatcher, logger: logger}
}

// Send resolves name against the registry before anything goes on the wire.
// A cancel sent here reaches the service only; running polling jobs are
// left alone.
func (s *commandService) Send(ctx context.Context, name string, params models.Params) (models.Response, error) {
	cmd, err := s.registry.Lookup(name)
	if err != nil {
		return models.Response{}, err
	}

	return s.dispatcher.Send(ctx, cmd, params)
}
