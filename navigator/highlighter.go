// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navigator

import (
	"image/color"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// Highlighter holds the highlight state of one navigator: at most one
// selected curve and at most one hovered curve, with the last call winning.
type Highlighter struct {

	// Kind is the kind of curves displayed by the navigator,
	// used to resolve the mesh that shows a highlight.
	Kind alignment.Kind

	// SelectColor is the color used to render the selected curve.
	SelectColor color.RGBA

	// HoverColor is the color used to render the hovered curve.
	HoverColor color.RGBA

	selected *alignment.Mesh
	hovered  *alignment.Mesh
}

// Defaults sets the default highlight colors.
func (hl *Highlighter) Defaults() {
	hl.SelectColor = errors.Must1(colors.FromHex("#ff6400"))
	hl.HoverColor = errors.Must1(colors.FromHex("#6464ff"))
}

// Select makes the given mesh the selected one, replacing any previous
// selection. The mesh may come from a navigator of another kind.
// A nil mesh is the same as [Highlighter.Unselect].
func (hl *Highlighter) Select(mesh *alignment.Mesh) {
	hl.selected = mesh
}

// Unselect removes the selection.
func (hl *Highlighter) Unselect() {
	hl.selected = nil
}

// Selected returns the selected mesh, or nil.
func (hl *Highlighter) Selected() *alignment.Mesh {
	return hl.selected
}

// SelectedRef returns the identity of the selected curve,
// and false if nothing is selected.
func (hl *Highlighter) SelectedRef() (alignment.CurveRef, bool) {
	if hl.selected == nil {
		return alignment.CurveRef{}, false
	}
	return hl.selected.Curve.Ref(), true
}

// Display returns the mesh of the highlighter's kind that shows the
// selection: the counterpart of the selected curve, or the selected
// mesh itself when the alignment has no counterpart of this kind.
func (hl *Highlighter) Display() *alignment.Mesh {
	return hl.resolve(hl.selected)
}

// Hover makes the given mesh the hovered one; nil removes the hover.
func (hl *Highlighter) Hover(mesh *alignment.Mesh) {
	hl.hovered = mesh
}

// Hovered returns the hovered mesh, or nil.
func (hl *Highlighter) Hovered() *alignment.Mesh {
	return hl.hovered
}

// Clear removes both the selection and the hover.
func (hl *Highlighter) Clear() {
	hl.selected = nil
	hl.hovered = nil
}

func (hl *Highlighter) resolve(mesh *alignment.Mesh) *alignment.Mesh {
	if mesh == nil {
		return nil
	}
	if mesh.Curve.Kind == hl.Kind {
		return mesh
	}
	if cv := mesh.Curve.Counterpart(hl.Kind); cv != nil {
		return cv.Mesh
	}
	return mesh
}
