// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ResponseRegion is the element id of the page area that receives the
// results of request and resolve commands.
const ResponseRegion = "fm_response"

// LFNTag returns the element id of the status region for lfn: the last path
// segment with the ".root" suffix removed.
//
//	LFNTag("/store/data/Run2010A/file.root") == "file"
func LFNTag(lfn string) string {
	last := lfn
	if i := strings.LastIndex(lfn, "/"); i >= 0 {
		last = lfn[i+1:]
	}

	return strings.Replace(last, ".root", "", 1)
}

// NormalizeLFN trims the whitespace users tend to paste around an LFN.
func NormalizeLFN(lfn string) string {
	return strings.TrimSpace(lfn)
}
