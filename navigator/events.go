// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navigator

import (
	"cogentcore.org/civil/alignment"
	"cogentcore.org/core/math32"
)

// HighlightEvent is sent to the [Navigator.OnHighlight] listeners
// when a curve is picked in a navigator.
type HighlightEvent struct {

	// Mesh is the selected mesh, from which the curve
	// and its alignment are recovered.
	Mesh *alignment.Mesh

	// Point is the picked point, in view coordinates.
	Point math32.Vector3

	// Navigator is the navigator in which the curve was picked.
	Navigator *Navigator

	handled bool
}

// Curve returns the selected curve, or nil if there is no mesh.
func (ev *HighlightEvent) Curve() *alignment.Curve {
	if ev == nil || ev.Mesh == nil {
		return nil
	}
	return ev.Mesh.Curve
}

// SetHandled marks the event as handled, which stops it
// from being sent to any further listeners.
func (ev *HighlightEvent) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *HighlightEvent) IsHandled() bool {
	return ev.handled
}

// Listeners is a list of highlight listener functions.
// Listeners are closure methods with all context captured.
type Listeners []func(ev *HighlightEvent)

// Add adds the given listener function.
func (ls *Listeners) Add(fun func(ev *HighlightEvent)) {
	*ls = append(*ls, fun)
}

// Len returns the number of listeners.
func (ls Listeners) Len() int {
	return len(ls)
}

// Call calls all listeners with the given event.
// It goes in _reverse_ order so the last functions added are the first called,
// and it stops when the event is marked as handled. This allows for a natural
// and optional override behavior.
func (ls Listeners) Call(ev *HighlightEvent) {
	for i := len(ls) - 1; i >= 0; i-- {
		if ev.IsHandled() {
			return
		}
		ls[i](ev)
	}
}
