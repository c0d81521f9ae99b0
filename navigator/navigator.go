// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package navigator provides independent views of civil alignments:
// the plan, elevation, and 3D navigators. Each navigator draws its own
// subset of alignments, holds its own highlight state, and notifies
// listeners when a curve is picked in it.
package navigator

import (
	"fmt"
	"log/slog"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/camera"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
)

// Navigator is an independent view that draws one kind of alignment
// curves. Navigators do not share mutable state; they are kept consistent
// by listening to each other's highlight events.
type Navigator struct {

	// Name is the name of the navigator, used in logs and messages.
	Name string

	// Kind is the kind of curves this navigator draws.
	Kind alignment.Kind

	// Camera, if set, is the camera of the world the navigator draws in.
	// It is fitted to the drawn curves after every [Navigator.Draw].
	Camera *camera.Controls

	highlighter Highlighter
	drawn       keylist.List[string, *alignment.Alignment]
	listeners   Listeners
}

// New returns a new [Navigator] with the given name that draws
// curves of the given kind.
func New(name string, kind alignment.Kind) *Navigator {
	nv := &Navigator{Name: name, Kind: kind}
	nv.highlighter.Kind = kind
	nv.highlighter.Defaults()
	return nv
}

// NewPlan returns a new navigator of the horizontal (plan) curves.
func NewPlan() *Navigator {
	return New("plan", alignment.Horizontal)
}

// NewElevation returns a new navigator of the vertical (elevation) curves.
func NewElevation() *Navigator {
	return New("elevation", alignment.Vertical)
}

// New3D returns a new navigator of the absolute (3D) curves.
func New3D() *Navigator {
	return New("3d", alignment.Absolute)
}

func (nv *Navigator) String() string {
	return fmt.Sprintf("%s navigator (%s, %d alignments)", nv.Name, nv.Kind, nv.drawn.Len())
}

// Clear removes all drawn alignments and the highlight state.
// Clearing an empty navigator does nothing.
func (nv *Navigator) Clear() {
	nv.drawn.Reset()
	nv.highlighter.Clear()
}

// Draw draws the curves of the navigator's kind for the given alignments
// of the model, or for all of its alignments if none are given.
// Drawing an alignment that is already drawn replaces it.
// A nil model draws nothing.
func (nv *Navigator) Draw(model *alignment.Model, filter ...*alignment.Alignment) {
	if model == nil {
		return
	}
	als := filter
	if len(als) == 0 {
		als = model.Alignments()
	}
	for _, al := range als {
		if al == nil {
			continue
		}
		if al.Model != model {
			slog.Warn("navigator: skipping alignment from another model", "navigator", nv.Name, "alignment", al.Name)
			continue
		}
		nv.drawn.Set(al.Name, al)
	}
	if nv.Camera != nil {
		nv.Camera.FitToBox(nv.Bounds(), false)
	}
}

// DrawnAlignments returns the drawn alignments, in drawing order.
func (nv *Navigator) DrawnAlignments() []*alignment.Alignment {
	return append([]*alignment.Alignment(nil), nv.drawn.Values...)
}

// Drawn returns the drawn curves, in drawing order.
func (nv *Navigator) Drawn() []*alignment.Curve {
	var cvs []*alignment.Curve
	for _, al := range nv.drawn.Values {
		cvs = append(cvs, al.Curves(nv.Kind)...)
	}
	return cvs
}

// IsDrawn returns whether the given curve, or its counterpart of the
// navigator's kind, is drawn.
func (nv *Navigator) IsDrawn(cv *alignment.Curve) bool {
	if cv == nil {
		return false
	}
	al, ok := nv.drawn.AtTry(cv.Alignment.Name)
	if !ok || al != cv.Alignment {
		return false
	}
	return cv.Counterpart(nv.Kind) != nil
}

// Bounds returns the bounding box of the drawn curves, which is
// empty if nothing with valid geometry is drawn.
func (nv *Navigator) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, cv := range nv.Drawn() {
		cb, ok := cv.Mesh.Geometry.ComputeBoundingBox()
		if ok {
			bb.ExpandByBox(cb)
		}
	}
	return bb
}

// nearest returns the mesh of the drawn curve nearest to the given
// point within the given tolerance, or nil.
func (nv *Navigator) nearest(point math32.Vector3, tolerance float32) *alignment.Mesh {
	var best *alignment.Mesh
	bd := tolerance
	for _, cv := range nv.Drawn() {
		d, _ := cv.Mesh.Geometry.Distance(point)
		if d <= bd {
			best, bd = cv.Mesh, d
		}
	}
	return best
}

// Pick selects the drawn curve nearest to the given point, in view
// coordinates, within the given tolerance, and sends a [HighlightEvent]
// to the highlight listeners. It returns the selected mesh, or nil
// if no curve is close enough, in which case nothing changes.
func (nv *Navigator) Pick(point math32.Vector3, tolerance float32) *alignment.Mesh {
	mesh := nv.nearest(point, tolerance)
	if mesh == nil {
		return nil
	}
	nv.highlight(mesh, point)
	return mesh
}

// Hover sets the hovered curve to the drawn curve nearest to the given
// point within the given tolerance, removing the hover if there is none.
// It does not send any event.
func (nv *Navigator) Hover(point math32.Vector3, tolerance float32) *alignment.Mesh {
	mesh := nv.nearest(point, tolerance)
	nv.highlighter.Hover(mesh)
	return mesh
}

// Highlighter returns the highlight state of the navigator.
func (nv *Navigator) Highlighter() *Highlighter {
	return &nv.highlighter
}

// Select selects the given mesh as if it had been picked and sends a
// [HighlightEvent] to the highlight listeners. It returns false and does
// nothing if the curve of the mesh is not drawn.
func (nv *Navigator) Select(mesh *alignment.Mesh) bool {
	if mesh == nil || !nv.IsDrawn(mesh.Curve) {
		return false
	}
	var point math32.Vector3
	if pts := mesh.Geometry.Points; len(pts) > 0 {
		point = pts[0]
	}
	nv.highlight(mesh, point)
	return true
}

func (nv *Navigator) highlight(mesh *alignment.Mesh, point math32.Vector3) {
	nv.highlighter.Select(mesh)
	nv.listeners.Call(&HighlightEvent{Mesh: mesh, Point: point, Navigator: nv})
}

// OnHighlight adds the given function to the listeners called when a
// curve is picked or highlighted in this navigator. All listeners are
// called, most recently added first, until one marks the event as handled.
func (nv *Navigator) OnHighlight(fun func(ev *HighlightEvent)) {
	nv.listeners.Add(fun)
}

// NumListeners returns the number of highlight listeners.
func (nv *Navigator) NumListeners() int {
	return nv.listeners.Len()
}
