// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the command line client's view of [StructuredConfig].
type ClientConfig struct {
	// FileMover holds the service location, polling schedule and user.
	FileMover FileMover
}

// ClientOverrides carries values the client received on its own command
// line. Non-zero fields win over every other source.
type ClientOverrides struct {
	JSONFilePath string
	BaseURL      string
	User         string
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables, the JSON file and overrides.
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv()

	jsonPath := overrides.JSONFilePath
	if jsonPath == "" {
		for _, cfg := range b.configs {
			if cfg.JSONFilePath != "" {
				jsonPath = cfg.JSONFilePath
			}
		}
	}
	b.withJSONFile(jsonPath)

	b.configs = append(b.configs, &StructuredConfig{
		FileMover: FileMover{
			BaseURL: overrides.BaseURL,
			User:    overrides.User,
		},
	})

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{FileMover: cfg.FileMover}

	return clientCfg, clientCfg.validate()
}
