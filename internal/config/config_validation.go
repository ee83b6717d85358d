// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [StructuredConfig] can start the portal.
func (cfg *StructuredConfig) validate() error {
	if cfg.Portal.HTTPAddress == "" || cfg.Portal.RequestTimeout <= 0 {
		return ErrInvalidPortalConfigs
	}

	if cfg.Identity.URL == "" || cfg.Identity.LoginURL == "" ||
		cfg.Identity.LogoutURL == "" || cfg.Identity.Timeout <= 0 {
		return ErrInvalidIdentityConfigs
	}

	return cfg.FileMover.validate()
}

func (f FileMover) validate() error {
	if f.BaseURL == "" || f.Timeout <= 0 {
		return ErrInvalidFileMoverConfigs
	}

	if f.InitialDelay <= 0 || f.MaxDelay <= 0 || f.InitialDelay > f.MaxDelay {
		return ErrInvalidFileMoverConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.FileMover.validate(); err != nil {
		return err
	}

	if cfg.FileMover.User == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
