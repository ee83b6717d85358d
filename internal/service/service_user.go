// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/identity"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
)

type userService struct {
	resolver identity.Resolver

	logger *logger.Logger
}

func NewUserService(resolver identity.Resolver, logger *logger.Logger) UserService {
	return &userService{resolver: resolver, logger: logger}
}

func (s *userService) CurrentUser(ctx context.Context, cookies []*http.Cookie) string {
	state, err := s.resolver.Lookup(ctx, cookies)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("identity lookup failed, treating session as anonymous")
		return ""
	}
	if state.Kind != models.LoginIdentified {
		return ""
	}
	return state.DN
}
