// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/fragment"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
)

const traceIDHeader = "X-Trace-ID"

type httpDispatcher struct {
	client   *utils.HTTPClient
	registry *Registry
	decoder  *fragment.Decoder

	logger *logger.Logger
}

// NewHTTPDispatcher returns the HTTP implementation of [Dispatcher] for the
// service at cfg.BaseURL. registry is shared, not copied.
func NewHTTPDispatcher(cfg config.FileMover, registry *Registry, logger *logger.Logger) (Dispatcher, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid filemover base url: %w", err)
	}
	if registry == nil {
		return nil, fmt.Errorf("nil command registry")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpDispatcher{
		client:   client,
		registry: registry,
		decoder:  fragment.NewDecoder(""),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Dispatcher]. The request's trace id, when present in ctx,
// is forwarded in the X-Trace-ID header.
func (d *httpDispatcher) Send(ctx context.Context, cmd models.Command, params models.Params) (models.Response, error) {
	path, err := d.registry.Path(cmd)
	if err != nil {
		return models.Response{}, err
	}

	req := d.client.R().
		SetContext(ctx).
		SetQueryParams(params)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s request: %w", cmd, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, fmt.Errorf("%s: %w", cmd, err)
	}

	decoded, err := d.decoder.Decode(resp.Body())
	if err != nil {
		return models.Response{}, fmt.Errorf("%s decode: %w", cmd, err)
	}

	for _, e := range decoded.Effects {
		if e.Kind == models.EffectUnknown {
			d.logger.Debug().Str("command", string(cmd)).Str("script", e.Arg).Msg("ignoring unrecognised script block")
		}
	}

	return decoded, nil
}
