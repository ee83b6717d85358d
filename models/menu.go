// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MenuEntry is one item of the masthead navigation list.
type MenuEntry struct {
	// ID is rendered as the id attribute of the <li> element and is used by
	// per-page stylesheets to highlight the current site.
	ID    string
	Label string
	Link  string
	Title string
}

// Position selects the footer column an entry is rendered in.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// FooterEntry is one link of the masthead footer row.
type FooterEntry struct {
	Label string
	Link  string
	Title string

	// Position is PositionLeft or PositionRight. The zero value renders on
	// the left.
	Position Position
}

// IsRight reports whether the entry belongs to the right footer column.
func (f FooterEntry) IsRight() bool {
	return f.Position == PositionRight
}
