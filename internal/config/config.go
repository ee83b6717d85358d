// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds build and version settings.
	App App `envPrefix:"APP_"`

	// Portal holds the inbound HTTP server settings.
	Portal Portal `envPrefix:"PORTAL_"`

	// Identity holds the identity (login) service settings used by the
	// masthead login banner.
	Identity Identity `envPrefix:"IDENTITY_"`

	// FileMover holds the FileMover service endpoint and the polling
	// schedule.
	FileMover FileMover `envPrefix:"FILEMOVER_"`

	// Masthead holds static resource locations for the masthead.
	Masthead Masthead `envPrefix:"MASTHEAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Portal holds network and timeout settings for the portal HTTP server.
type Portal struct {
	// HTTPAddress is the "host:port" the portal listens on.
	// Env: PORTAL_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageID selects the per-page masthead stylesheet of the landing page.
	// Env: PORTAL_PAGE_ID
	PageID string `env:"PAGE_ID"`
}

// Identity holds the identity service settings.
type Identity struct {
	// URL is the user-info endpoint answering with <user dn="..."/>.
	// Env: IDENTITY_URL
	URL string `env:"URL"`

	// Timeout bounds a single lookup. The masthead shows the Login link when
	// it expires.
	// Env: IDENTITY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// LoginURL receives the requestedPage query parameter.
	// Env: IDENTITY_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// LogoutURL receives the redirect query parameter.
	// Env: IDENTITY_LOGOUT_URL
	LogoutURL string `env:"LOGOUT_URL"`

	// FallbackURL is where pages go when the identity service answers
	// without a dn.
	// Env: IDENTITY_FALLBACK_URL
	FallbackURL string `env:"FALLBACK_URL"`
}

// FileMover holds the FileMover service location and polling schedule.
type FileMover struct {
	// BaseURL is the scheme and host of the FileMover service.
	// Env: FILEMOVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// BasePath is the path prefix every command is mounted under.
	// Env: FILEMOVER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// Timeout bounds a single command round-trip.
	// Env: FILEMOVER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// InitialDelay is the wait between a request and its first status poll.
	// Env: FILEMOVER_INITIAL_DELAY
	InitialDelay time.Duration `env:"INITIAL_DELAY"`

	// MaxDelay caps the doubling poll interval.
	// Env: FILEMOVER_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`

	// User is the account name sent along with commands by the command
	// line client.
	// Env: FILEMOVER_USER
	User string `env:"USER"`
}

// Masthead holds static resource locations.
type Masthead struct {
	// StyleBaseURL is the directory holding the dmwt_*.css stylesheets.
	// Env: MASTHEAD_STYLE_BASE_URL
	StyleBaseURL string `env:"STYLE_BASE_URL"`

	// LogoURL is the 16x16 logo shown as the first menu entry.
	// Env: MASTHEAD_LOGO_URL
	LogoURL string `env:"LOGO_URL"`
}

// GetStructuredConfig loads, merges, and validates the portal configuration
// from all sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
