// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masthead

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentURL = "https://cmsweb.cern.ch/filemover/"

// stubResolver возвращает заранее заданное состояние входа.
type stubResolver struct {
	state   models.LoginState
	err     error
	cookies []*http.Cookie
	calls   int
}

func (s *stubResolver) Lookup(_ context.Context, cookies []*http.Cookie) (models.LoginState, error) {
	s.calls++
	s.cookies = cookies
	return s.state, s.err
}

func testConfigs() (config.Masthead, config.Identity) {
	return config.Masthead{
			StyleBaseURL: "https://cmsweb.cern.ch/sitedb/Common/css/",
			LogoURL:      "https://cmsweb.cern.ch/sitedb/Common/images/logomini.png",
		}, config.Identity{
			LoginURL:    "https://cmsweb.cern.ch/base/SecurityModule/login",
			LogoutURL:   "https://cmsweb.cern.ch/base/SecurityModule/logout",
			FallbackURL: "/filemover/",
		}
}

func newTestBuilder(t *testing.T, r *stubResolver, opts ...Option) *Builder {
	t.Helper()
	cfg, idCfg := testConfigs()
	b, err := NewBuilder(r, cfg, idCfg, logger.Nop(), opts...)
	require.NoError(t, err)
	return b
}

// ── menu ────────────────────────────────────────────────────────────────────

func TestBuild_MenuHasSevenEntriesInOrder(t *testing.T) {
	for _, page := range []string{"filemover", "phedex", "sitedb", "x"} {
		t.Run(page, func(t *testing.T) {
			b := newTestBuilder(t, &stubResolver{state: models.NewLoginState("guest", true)})

			frag, err := b.Build(context.Background(), Page{ID: page, CurrentURL: currentURL})
			require.NoError(t, err)
			body := string(frag.Body)

			assert.Equal(t, 1, strings.Count(body, `class="mastheadLogo"`))
			assert.Equal(t, 7, strings.Count(body, "<li id="))

			logo := strings.Index(body, "mastheadLogo")
			prev := logo
			for _, e := range DefaultMenu() {
				idx := strings.Index(body, `<li id="`+e.ID+`">`)
				require.NotEqual(t, -1, idx, e.ID)
				assert.Greater(t, idx, prev, "%s out of order", e.ID)
				prev = idx
			}
		})
	}
}

func TestBuild_Stylesheets(t *testing.T) {
	b := newTestBuilder(t, &stubResolver{state: models.NewLoginState("guest", true)})

	frag, err := b.Build(context.Background(), Page{ID: "filemover"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://cmsweb.cern.ch/sitedb/Common/css/dmwt_main.css",
		"https://cmsweb.cern.ch/sitedb/Common/css/dmwt_masthead.css",
		"https://cmsweb.cern.ch/sitedb/Common/css/dmwt_masthead_filemover.css",
	}, frag.Stylesheets)
	assert.Equal(t, 3, strings.Count(string(frag.Head), `<link rel="stylesheet"`))
	assert.NotContains(t, string(frag.Head), "_ie.css")
}

func TestBuild_EmptyPageID(t *testing.T) {
	r := &stubResolver{}
	b := newTestBuilder(t, r)

	_, err := b.Build(context.Background(), Page{})
	assert.ErrorIs(t, err, ErrEmptyPageID)
	assert.Zero(t, r.calls)
}

// ── login region ────────────────────────────────────────────────────────────

func TestBuild_LoginRegion(t *testing.T) {
	loginHref := "https://cmsweb.cern.ch/base/SecurityModule/login?requestedPage=" + url.QueryEscape(currentURL)
	logoutHref := "https://cmsweb.cern.ch/base/SecurityModule/logout?redirect=" + url.QueryEscape(currentURL)

	tests := []struct {
		name         string
		resolver     *stubResolver
		wantContains []string
		wantMissing  []string
		wantRedirect string
	}{
		{
			name:         "dn absent redirects",
			resolver:     &stubResolver{state: models.NewLoginState("", false)},
			wantMissing:  []string{"LoginObject"},
			wantRedirect: "/filemover/",
		},
		{
			name:         "None",
			resolver:     &stubResolver{state: models.NewLoginState("None", true)},
			wantContains: []string{`<a href="` + loginHref + `">Login</a>`},
		},
		{
			name:         "guest",
			resolver:     &stubResolver{state: models.NewLoginState("guest", true)},
			wantContains: []string{`>Login</a>`},
		},
		{
			name:         "Unknown",
			resolver:     &stubResolver{state: models.NewLoginState("Unknown", true)},
			wantContains: []string{`>Login</a>`},
		},
		{
			name:         "identified",
			resolver:     &stubResolver{state: models.NewLoginState("/DC=ch/DC=cern/CN=Jane Roe", true)},
			wantContains: []string{"/DC=ch/DC=cern/CN=Jane Roe &#187; ", `<a href="` + logoutHref + `">logout</a>`},
			wantMissing:  []string{">Login<"},
		},
		{
			name:         "lookup failure fails open",
			resolver:     &stubResolver{state: models.UnknownLogin(), err: errors.New("timeout")},
			wantContains: []string{`<a href="` + loginHref + `">Login</a>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t, tt.resolver)

			frag, err := b.Build(context.Background(), Page{ID: "filemover", CurrentURL: currentURL})
			require.NoError(t, err)

			body := string(frag.Body)
			for _, s := range tt.wantContains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.wantMissing {
				assert.NotContains(t, body, s)
			}
			assert.Equal(t, tt.wantRedirect, frag.RedirectTo)
			assert.Equal(t, 1, tt.resolver.calls)
		})
	}
}

func TestBuild_ForwardsCookies(t *testing.T) {
	r := &stubResolver{state: models.NewLoginState("guest", true)}
	b := newTestBuilder(t, r)
	cookies := []*http.Cookie{{Name: "session", Value: "abc"}}

	_, err := b.Build(context.Background(), Page{ID: "filemover", Cookies: cookies})
	require.NoError(t, err)
	assert.Equal(t, cookies, r.cookies)
}

// ── footer ──────────────────────────────────────────────────────────────────

func TestBuild_NoTitleNoFooter(t *testing.T) {
	b := newTestBuilder(t, &stubResolver{state: models.NewLoginState("guest", true)})

	frag, err := b.Build(context.Background(), Page{ID: "filemover"})
	require.NoError(t, err)
	assert.NotContains(t, string(frag.Body), "mastheadfooter")
}

func TestBuild_FooterPartition(t *testing.T) {
	footer := []models.FooterEntry{
		{Label: "A", Link: "/a/", Title: "a", Position: models.PositionRight},
		{Label: "B", Link: "/b/", Title: "b"},
		{Label: "C", Link: "/c/", Title: "c", Position: models.PositionRight},
	}
	b := newTestBuilder(t, &stubResolver{state: models.NewLoginState("guest", true)}, WithFooter(footer))

	frag, err := b.Build(context.Background(), Page{ID: "filemover", Title: "FileMover"})
	require.NoError(t, err)
	body := string(frag.Body)

	left := between(body, `<div class="mhfootleft">`, "</div>")
	right := between(body, `<div class="mhfootright">`, "</div>")

	assert.Contains(t, left, "<li>FileMover</li>")
	assert.Equal(t, 1, strings.Count(left, "<a "))
	assert.NotContains(t, left, " - ")

	assert.Equal(t, 2, strings.Count(right, "<a "))
	assert.Contains(t, right, `<li><a href="/a/" title="a">A</a></li>`)
	assert.Contains(t, right, `<li> - <a href="/c/" title="c">C</a></li>`)
}

func TestPartitionFooter(t *testing.T) {
	view := partitionFooter("T", []models.FooterEntry{
		{Label: "L1"},
		{Label: "R1", Position: models.PositionRight},
		{Label: "L2", Position: models.PositionLeft},
	})

	require.Len(t, view.Left, 2)
	require.Len(t, view.Right, 1)
	assert.False(t, view.Left[0].Separator)
	assert.True(t, view.Left[1].Separator)
	assert.False(t, view.Right[0].Separator)
	assert.Equal(t, "T", view.Title)
}

func TestBuild_DefaultFooter(t *testing.T) {
	b := newTestBuilder(t, &stubResolver{state: models.NewLoginState("guest", true)})

	frag, err := b.Build(context.Background(), Page{ID: "filemover", Title: "FileMover"})
	require.NoError(t, err)

	left := between(string(frag.Body), `<div class="mhfootleft">`, "</div>")
	assert.Contains(t, left, `<li><a href="/phedex/" title="Data placement, transfer monitoring">PhEDEx Home</a></li>`)
	assert.Contains(t, left, `<li> - <a href="/filemover/" title="Fetch your favorite LFN">FileMover</a></li>`)
}

func between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	s = s[i+len(start):]
	if j := strings.Index(s, end); j >= 0 {
		return s[:j]
	}
	return s
}
