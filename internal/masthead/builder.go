// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masthead

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/identity"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/models"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// Page describes the page a masthead is built for.
type Page struct {
	// ID selects the per-page stylesheet dmwt_masthead_<ID>.css.
	ID string
	// Title enables the footer row when non-empty.
	Title string
	// CurrentURL is the return target of the login and logout links.
	CurrentURL string
	// Cookies are forwarded to the identity lookup.
	Cookies []*http.Cookie
}

// Fragment is a rendered masthead.
type Fragment struct {
	// Head holds the <link> elements for the page head.
	Head template.HTML
	// Body holds the masthead markup.
	Body template.HTML
	// Stylesheets are the hrefs rendered into Head.
	Stylesheets []string
	// Login is the outcome of the identity lookup.
	Login models.LoginState
	// RedirectTo is set when the identity service answered without a dn.
	// The page should send the browser there.
	RedirectTo string
}

type loginView struct {
	Kind string
	DN   string
	URL  string
}

type mastheadView struct {
	LogoURL string
	Menu    []models.MenuEntry
	Login   loginView
	Footer  *footerView
}

// Builder renders mastheads. It is safe for concurrent use.
type Builder struct {
	resolver identity.Resolver
	tmpl     *template.Template

	styleBaseURL string
	logoURL      string
	loginURL     string
	logoutURL    string
	fallbackURL  string

	menu   []models.MenuEntry
	footer []models.FooterEntry

	logger *logger.Logger
}

// Option customises a Builder.
type Option func(*Builder)

// WithMenu replaces the navigation entries.
func WithMenu(entries []models.MenuEntry) Option {
	return func(b *Builder) { b.menu = entries }
}

// WithFooter replaces the footer entries.
func WithFooter(entries []models.FooterEntry) Option {
	return func(b *Builder) { b.footer = entries }
}

// NewBuilder returns a Builder resolving logins with resolver.
func NewBuilder(resolver identity.Resolver, cfg config.Masthead, idCfg config.Identity, logger *logger.Logger, opts ...Option) (*Builder, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse masthead templates: %w", err)
	}

	b := &Builder{
		resolver:     resolver,
		tmpl:         tmpl,
		styleBaseURL: strings.TrimRight(cfg.StyleBaseURL, "/"),
		logoURL:      cfg.LogoURL,
		loginURL:     idCfg.LoginURL,
		logoutURL:    idCfg.LogoutURL,
		fallbackURL:  idCfg.FallbackURL,
		menu:         DefaultMenu(),
		footer:       DefaultFooter(),
		logger:       logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Build renders the masthead of page. The identity lookup is performed once;
// its failure is logged and rendered as the Login link, never returned.
func (b *Builder) Build(ctx context.Context, page Page) (Fragment, error) {
	if page.ID == "" {
		return Fragment{}, ErrEmptyPageID
	}

	state, err := b.resolver.Lookup(ctx, page.Cookies)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("page", page.ID).Msg("identity lookup failed, showing login link")
		state = models.UnknownLogin()
	}

	frag := Fragment{
		Stylesheets: b.stylesheets(page.ID),
		Login:       state,
	}

	view := mastheadView{
		LogoURL: b.logoURL,
		Menu:    b.menu,
		Login:   b.loginView(state, page.CurrentURL),
	}
	if state.Kind == models.LoginMissing {
		frag.RedirectTo = b.fallbackURL
	}
	if page.Title != "" {
		view.Footer = partitionFooter(page.Title, b.footer)
	}

	var head, body bytes.Buffer
	if err = b.tmpl.ExecuteTemplate(&head, "stylesheets", frag.Stylesheets); err != nil {
		return Fragment{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err = b.tmpl.ExecuteTemplate(&body, "masthead", view); err != nil {
		return Fragment{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	frag.Head = template.HTML(head.String())
	frag.Body = template.HTML(body.String())

	return frag, nil
}

// stylesheets returns the shared, masthead and per-page stylesheet hrefs.
func (b *Builder) stylesheets(pageID string) []string {
	return []string{
		b.styleBaseURL + "/dmwt_main.css",
		b.styleBaseURL + "/dmwt_masthead.css",
		b.styleBaseURL + "/dmwt_masthead_" + url.PathEscape(pageID) + ".css",
	}
}

func (b *Builder) loginView(state models.LoginState, currentURL string) loginView {
	switch {
	case state.ShowLoginLink():
		return loginView{Kind: "login", URL: withQuery(b.loginURL, "requestedPage", currentURL)}
	case state.Kind == models.LoginIdentified:
		return loginView{Kind: "logout", DN: state.DN, URL: withQuery(b.logoutURL, "redirect", currentURL)}
	default:
		return loginView{}
	}
}

func withQuery(base, key, value string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + url.Values{key: {value}}.Encode()
}
