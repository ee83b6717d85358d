// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/fm-portal/models"
)

// maxUnknownArg bounds the script excerpt kept for unrecognised blocks.
const maxUnknownArg = 120

type effectPattern struct {
	kind models.EffectKind
	re   *regexp.Regexp
}

// Quotes may arrive escaped (\') because the service builds the calls inside
// single-quoted setTimeout strings.
var effectPatterns = []effectPattern{
	{kind: models.EffectPollStatus, re: regexp.MustCompile(`ajaxStatusOne\(\s*\\?['"]([^'"\\]*)\\?['"]`)},
	{kind: models.EffectDBSStatus, re: regexp.MustCompile(`ajaxdbsStatus\(\s*\\?['"]([^'"\\]*)\\?['"]`)},
	{kind: models.EffectFormAction, re: regexp.MustCompile(`EFormAction\(\s*\\?['"]([^'"\\]*)\\?['"]`)},
	{kind: models.EffectClearInterval, re: regexp.MustCompile(`clearInterval\(\s*\)`)},
}

// classify maps one script body to the effects it requests.
func classify(script string) []models.SideEffect {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil
	}

	var effects []models.SideEffect
	for _, p := range effectPatterns {
		for _, m := range p.re.FindAllStringSubmatch(script, -1) {
			e := models.SideEffect{Kind: p.kind}
			if len(m) > 1 {
				e.Arg = m[1]
			}
			effects = append(effects, e)
		}
	}

	if len(effects) == 0 {
		effects = append(effects, models.SideEffect{Kind: models.EffectUnknown, Arg: truncate(script, maxUnknownArg)})
	}

	return effects
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
