// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginKind classifies the outcome of an identity lookup.
type LoginKind int

const (
	// LoginMissing means the identity service answered without a dn
	// attribute. The page is expected to redirect to the fallback page.
	LoginMissing LoginKind = iota
	// LoginAnonymous means the dn was one of the anonymous sentinels.
	LoginAnonymous
	// LoginUnknown means the lookup itself failed.
	LoginUnknown
	// LoginIdentified means a real distinguished name was returned.
	LoginIdentified
)

// anonymousDNs are the dn values the identity service uses for users without
// a certificate or session.
var anonymousDNs = map[string]struct{}{
	"None":    {},
	"guest":   {},
	"Unknown": {},
}

// LoginState is the transient result of one identity lookup. It is never
// persisted and is recomputed for every masthead render.
type LoginState struct {
	Kind LoginKind
	DN   string
}

// NewLoginState classifies a dn attribute value. present is false when the
// attribute was missing from the response.
func NewLoginState(dn string, present bool) LoginState {
	if !present || dn == "" {
		return LoginState{Kind: LoginMissing}
	}
	if _, ok := anonymousDNs[dn]; ok {
		return LoginState{Kind: LoginAnonymous, DN: dn}
	}

	return LoginState{Kind: LoginIdentified, DN: dn}
}

// UnknownLogin is the state used when the lookup failed.
func UnknownLogin() LoginState {
	return LoginState{Kind: LoginUnknown}
}

// ShowLoginLink reports whether the login region should offer a Login link.
func (s LoginState) ShowLoginLink() bool {
	return s.Kind == LoginAnonymous || s.Kind == LoginUnknown
}

func (k LoginKind) String() string {
	switch k {
	case LoginMissing:
		return "missing"
	case LoginAnonymous:
		return "anonymous"
	case LoginUnknown:
		return "unknown"
	case LoginIdentified:
		return "identified"
	default:
		return "invalid"
	}
}

// Owner names whose portal jobs a call acts on. Session keys the job set and
// is per DN for identified users and per browser otherwise; User is the DN
// sent to FileMover and may be empty.
type Owner struct {
	Session string
	User    string
}

// NewOwner keys identified users by DN so their jobs follow them across
// browsers. Anonymous visitors are keyed by their browser session id.
func NewOwner(user, browserSession string) Owner {
	if user != "" {
		return Owner{Session: "dn:" + user, User: user}
	}
	return Owner{Session: "anon:" + browserSession}
}
