// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package masthead renders the site-wide navigation banner shared by every
// portal page: the stylesheet links, the logo and menu, the login indicator
// and an optional footer row.
package masthead
