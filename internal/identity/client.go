// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
)

// Resolver resolves the login state of the session owning cookies.
type Resolver interface {
	Lookup(ctx context.Context, cookies []*http.Cookie) (models.LoginState, error)
}

// Client is the HTTP implementation of [Resolver].
type Client struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewClient returns a Client for the user-info endpoint in cfg. The request
// timeout is cfg.Timeout.
func NewClient(cfg config.Identity, logger *logger.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("identity client: empty url")
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.Timeout).
		SetHeader("Accept", "text/xml")

	return &Client{client: client, url: cfg.URL, logger: logger}, nil
}

// Lookup implements [Resolver]. cookies are forwarded so the identity service
// sees the browser's session.
func (c *Client) Lookup(ctx context.Context, cookies []*http.Cookie) (models.LoginState, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetCookies(cookies).
		Get(c.url)
	if err != nil {
		return models.UnknownLogin(), fmt.Errorf("identity request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return models.UnknownLogin(), fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode())
	}

	dn, present, err := parseUserDN(resp.Body())
	if err != nil {
		return models.UnknownLogin(), err
	}

	state := models.NewLoginState(dn, present)
	c.logger.Debug().Str("login", state.Kind.String()).Msg("identity resolved")

	return state, nil
}

// parseUserDN returns the dn attribute of the first <user> element at any
// depth of the document.
func parseUserDN(body []byte) (dn string, present bool, err error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", false, ErrNoUserElement
		}
		if err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "user" {
			continue
		}

		for _, attr := range start.Attr {
			if attr.Name.Local == "dn" {
				return attr.Value, true, nil
			}
		}
		return "", false, nil
	}
}
