// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not_an_ip:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-config", "/etc/portal.json",
		"-request-timeout", "45s",
		"-page", "filemover",
		"-identity-url", "https://id.example/userInfo",
		"-filemover-url", "http://fm.example",
		"-initial-delay", "2s",
		"-max-delay", "8s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Portal.HTTPAddress)
	assert.Equal(t, "/etc/portal.json", cfg.JSONFilePath)
	assert.Equal(t, 45*time.Second, cfg.Portal.RequestTimeout)
	assert.Equal(t, "filemover", cfg.Portal.PageID)
	assert.Equal(t, "https://id.example/userInfo", cfg.Identity.URL)
	assert.Equal(t, "http://fm.example", cfg.FileMover.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.FileMover.InitialDelay)
	assert.Equal(t, 8*time.Second, cfg.FileMover.MaxDelay)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
