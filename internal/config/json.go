// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Portal struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PageID         string   `json:"page_id"`
	} `json:"portal,omitempty"`

	Identity struct {
		URL         string   `json:"url"`
		Timeout     Duration `json:"timeout"`
		LoginURL    string   `json:"login_url"`
		LogoutURL   string   `json:"logout_url"`
		FallbackURL string   `json:"fallback_url"`
	} `json:"identity,omitempty"`

	FileMover struct {
		BaseURL      string   `json:"base_url"`
		BasePath     string   `json:"base_path"`
		Timeout      Duration `json:"timeout"`
		InitialDelay Duration `json:"initial_delay"`
		MaxDelay     Duration `json:"max_delay"`
		User         string   `json:"user"`
	} `json:"filemover,omitempty"`

	Masthead struct {
		StyleBaseURL string `json:"style_base_url"`
		LogoURL      string `json:"logo_url"`
	} `json:"masthead,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Portal: Portal{
			HTTPAddress:    jsonCfg.Portal.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Portal.RequestTimeout),
			PageID:         jsonCfg.Portal.PageID,
		},
		Identity: Identity{
			URL:         jsonCfg.Identity.URL,
			Timeout:     time.Duration(jsonCfg.Identity.Timeout),
			LoginURL:    jsonCfg.Identity.LoginURL,
			LogoutURL:   jsonCfg.Identity.LogoutURL,
			FallbackURL: jsonCfg.Identity.FallbackURL,
		},
		FileMover: FileMover{
			BaseURL:      jsonCfg.FileMover.BaseURL,
			BasePath:     jsonCfg.FileMover.BasePath,
			Timeout:      time.Duration(jsonCfg.FileMover.Timeout),
			InitialDelay: time.Duration(jsonCfg.FileMover.InitialDelay),
			MaxDelay:     time.Duration(jsonCfg.FileMover.MaxDelay),
			User:         jsonCfg.FileMover.User,
		},
		Masthead: Masthead{
			StyleBaseURL: jsonCfg.Masthead.StyleBaseURL,
			LogoURL:      jsonCfg.Masthead.LogoURL,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
