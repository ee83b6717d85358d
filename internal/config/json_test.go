// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	raw := `{
  "app": {"version": "2.0.0"},
  "portal": {"http_address": "0.0.0.0:80", "request_timeout": "1m", "page_id": "filemover"},
  "identity": {"url": "https://id/userInfo", "timeout": "5s", "login_url": "https://id/login", "logout_url": "https://id/logout", "fallback_url": "/home/"},
  "filemover": {"base_url": "http://fm", "base_path": "/fm", "timeout": "20s", "initial_delay": "1s", "max_delay": "4s", "user": "jdoe"},
  "masthead": {"style_base_url": "https://static/css", "logo_url": "https://static/logo.png"}
}`
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, time.Minute, cfg.Portal.RequestTimeout)
	assert.Equal(t, "/home/", cfg.Identity.FallbackURL)
	assert.Equal(t, 5*time.Second, cfg.Identity.Timeout)
	assert.Equal(t, "/fm", cfg.FileMover.BasePath)
	assert.Equal(t, 4*time.Second, cfg.FileMover.MaxDelay)
	assert.Equal(t, "jdoe", cfg.FileMover.User)
	assert.Equal(t, "https://static/logo.png", cfg.Masthead.LogoURL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1500ms"`, want: 1500 * time.Millisecond},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(10 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"10s"`, string(b))
}
