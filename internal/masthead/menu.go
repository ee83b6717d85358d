// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masthead

import "github.com/MKhiriev/fm-portal/models"

// DefaultMenu returns the masthead navigation entries in display order.
func DefaultMenu() []models.MenuEntry {
	return []models.MenuEntry{
		{
			ID:    "dashboard",
			Label: "Dashboard",
			Link:  "http://arda-dashboard.cern.ch/cms/",
			Title: "CMS Dashboard - Monitorring of jobs, transfers, IO rate, Tier 0.",
		},
		{
			ID:    "dbs",
			Label: "DBS Discovery",
			Link:  "https://cmsweb.cern.ch/dbs_discovery/",
			Title: "DBS/DLS Discovery - Data set book keeping and location.",
		},
		{
			ID:    "phedex",
			Label: "DataTransfer",
			Link:  "https://cmsweb.cern.ch/base/Common/datatransfer",
			Title: "Data placement, transfer, monitoring",
		},
		{
			ID:    "sitedb",
			Label: "SiteDB",
			Link:  "https://cmsweb.cern.ch/sitedb/sitelist",
			Title: "SiteDB - Site information and aggregate monitoring",
		},
		{
			ID:    "conddb",
			Label: "CondDB",
			Link:  "https://cmsweb.cern.ch/conddb/",
			Title: "CondDB - Conditions Database",
		},
		{
			ID:    "filemover",
			Label: "FileMover",
			Link:  "https://cmsweb.cern.ch/filemover/",
			Title: "FileMover - CMS File Mover Service",
		},
		{
			ID:    "help",
			Label: "Support",
			Link:  "https://cmsweb.cern.ch/sitedb/Common/help",
			Title: "Web Tools Support - File a bug report, ask for help, read our FAQ",
		},
	}
}

// DefaultFooter returns the footer links of the FileMover pages.
func DefaultFooter() []models.FooterEntry {
	return []models.FooterEntry{
		{Label: "PhEDEx Home", Link: "/phedex/", Title: "Data placement, transfer monitoring"},
		{Label: "FileMover", Link: "/filemover/", Title: "Fetch your favorite LFN"},
	}
}
