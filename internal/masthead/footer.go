// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masthead

import "github.com/MKhiriev/fm-portal/models"

// footerItem is a footer link with the " - " separator flag of its column.
type footerItem struct {
	models.FooterEntry
	Separator bool
}

type footerView struct {
	Title string
	Left  []footerItem
	Right []footerItem
}

// partitionFooter splits entries into their columns, keeping order. Every
// entry after the first one of a column is preceded by a separator. The
// title is not an entry and never counts as the first one.
func partitionFooter(title string, entries []models.FooterEntry) *footerView {
	view := &footerView{Title: title}
	for _, e := range entries {
		if e.IsRight() {
			view.Right = append(view.Right, footerItem{FooterEntry: e, Separator: len(view.Right) > 0})
			continue
		}
		view.Left = append(view.Left, footerItem{FooterEntry: e, Separator: len(view.Left) > 0})
	}
	return view
}
