// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultInitialDelay = 3 * time.Second
	DefaultMaxDelay     = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Portal: Portal{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			PageID:         "filemover",
		},
		Identity: Identity{
			URL:         "https://cmsweb.cern.ch/sitedb/SecurityModule/userInfo",
			Timeout:     3 * time.Second,
			LoginURL:    "https://cmsweb.cern.ch/base/SecurityModule/login",
			LogoutURL:   "https://cmsweb.cern.ch/base/SecurityModule/logout",
			FallbackURL: "/filemover/",
		},
		FileMover: FileMover{
			BaseURL:      "http://localhost:8400",
			BasePath:     "/filemover",
			Timeout:      30 * time.Second,
			InitialDelay: DefaultInitialDelay,
			MaxDelay:     DefaultMaxDelay,
		},
		Masthead: Masthead{
			StyleBaseURL: "https://cmsweb.cern.ch/sitedb/Common/css",
			LogoURL:      "https://cmsweb.cern.ch/sitedb/Common/images/logomini.png",
		},
	}
}
