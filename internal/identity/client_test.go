// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, timeout time.Duration) *Client {
	t.Helper()
	c, err := NewClient(config.Identity{URL: url, Timeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return c
}

func serveXML(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_Classifies(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind models.LoginKind
		dn   string
	}{
		{name: "identified", body: `<?xml version="1.0"?><info><user dn="/DC=ch/CN=Jane Doe"/></info>`, kind: models.LoginIdentified, dn: "/DC=ch/CN=Jane Doe"},
		{name: "guest", body: `<user dn="guest"/>`, kind: models.LoginAnonymous, dn: "guest"},
		{name: "None", body: `<user dn="None"></user>`, kind: models.LoginAnonymous, dn: "None"},
		{name: "dn absent", body: `<user name="x"/>`, kind: models.LoginMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveXML(t, http.StatusOK, tt.body)
			c := newTestClient(t, srv.URL, time.Second)

			state, err := c.Lookup(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, state.Kind)
			assert.Equal(t, tt.dn, state.DN)
		})
	}
}

func TestLookup_ForwardsCookies(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			got = c.Value
		}
		_, _ = w.Write([]byte(`<user dn="guest"/>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), []*http.Cookie{{Name: "session", Value: "abc"}})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestLookup_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := serveXML(t, http.StatusBadGateway, "")
		state, err := newTestClient(t, srv.URL, time.Second).Lookup(context.Background(), nil)
		assert.ErrorIs(t, err, ErrBadStatus)
		assert.Equal(t, models.LoginUnknown, state.Kind)
	})

	t.Run("no user element", func(t *testing.T) {
		srv := serveXML(t, http.StatusOK, `<info/>`)
		_, err := newTestClient(t, srv.URL, time.Second).Lookup(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoUserElement)
	})

	t.Run("malformed", func(t *testing.T) {
		srv := serveXML(t, http.StatusOK, `<user dn="x"`)
		_, err := newTestClient(t, srv.URL, time.Second).Lookup(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		state, err := newTestClient(t, srv.URL, 20*time.Millisecond).Lookup(context.Background(), nil)
		assert.Error(t, err)
		assert.Equal(t, models.LoginUnknown, state.Kind)
	})
}

func TestNewClient_EmptyURL(t *testing.T) {
	_, err := NewClient(config.Identity{}, logger.Nop())
	assert.Error(t, err)
}
