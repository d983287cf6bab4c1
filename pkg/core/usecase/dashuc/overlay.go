// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dashuc

import "github.com/momeni/car2go-client/pkg/core/model"

// Overlay is the single-slot selection state machine behind the
// booking details panel. At most one booking is open at a time;
// selecting a booking replaces any previous selection and selecting
// the already open booking keeps it open (no toggling). The overlay
// owns no data of its own: it projects the exact booking instance it
// was handed, never a re-fetched copy, so it cannot diverge from the
// rendered list. The selection is not persisted anywhere and a fresh
// Overlay is created per dashboard rendering.
type Overlay struct {
	selected *model.Booking
}

// Select opens the overlay on b, replacing any previous selection.
func (o *Overlay) Select(b model.Booking) {
	o.selected = &b
}

// Close clears the selection. Closing an already closed overlay is a
// no-op.
func (o *Overlay) Close() {
	o.selected = nil
}

// Current returns the selected booking, if the overlay is open.
func (o *Overlay) Current() (model.Booking, bool) {
	if o.selected == nil {
		return model.Booking{}, false
	}
	return *o.selected, true
}

// Open reports whether a booking is currently selected.
func (o *Overlay) Open() bool {
	return o.selected != nil
}
