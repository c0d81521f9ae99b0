// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package navsync keeps civil navigator views consistent with the
// curve selected in a primary navigator: it redraws a secondary view
// with only the alignment of the selected curve, highlights the curve
// in the secondary view and a 3D overview, and frames the 3D camera
// on the selected geometry.
package navsync

import (
	"errors"
	"log/slog"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/camera"
	"cogentcore.org/civil/geom"
	"cogentcore.org/civil/navigator"
)

// Source is a view that sends highlight events when a curve is picked in it.
type Source interface {
	OnHighlight(fun func(ev *navigator.HighlightEvent))
}

// View is a view that can be redrawn with a subset of alignments
// and that has its own highlight state.
type View interface {
	Clear()
	Draw(model *alignment.Model, filter ...*alignment.Alignment)
	Highlighter() *navigator.Highlighter
}

// Framer frames a bounding sphere with its camera. The returned
// animation is not awaited.
type Framer interface {
	FitToSphere(sp geom.Sphere, animate bool) *camera.Animation
}

// Config has the view bindings of a [Synchronizer].
type Config struct {

	// Primary is the view whose highlight events drive the synchronization,
	// typically the plan navigator.
	Primary Source

	// Secondary is the view that is redrawn with only the alignment of
	// the selected curve, typically the elevation navigator.
	Secondary View

	// Overview is the 3D view that highlights the selected curve.
	Overview View

	// Camera is the camera of the 3D world framed on the selected curve.
	Camera Framer
}

// Synchronizer propagates curve selections from a primary view to the
// other views. It runs synchronously in the turn of the highlight event.
type Synchronizer struct {
	Config

	last *camera.Animation
}

// New returns a new [Synchronizer] for the given views. It returns an
// error naming every missing view binding. The synchronizer is not
// active until [Synchronizer.Wire] is called.
func New(cfg Config) (*Synchronizer, error) {
	var errs []error
	if cfg.Primary == nil {
		errs = append(errs, errors.New("navsync: primary view not found"))
	}
	if cfg.Secondary == nil {
		errs = append(errs, errors.New("navsync: secondary view not found"))
	}
	if cfg.Overview == nil {
		errs = append(errs, errors.New("navsync: overview view not found"))
	}
	if cfg.Camera == nil {
		errs = append(errs, errors.New("navsync: camera not found"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Synchronizer{Config: cfg}, nil
}

// Wire registers [Synchronizer.Handle] on the highlight events of the primary view.
func (sy *Synchronizer) Wire() {
	sy.Primary.OnHighlight(sy.Handle)
}

// Handle synchronizes the views with the curve selected in the given event.
// If the bounding sphere of the selected curve's 3D geometry cannot be
// computed, the camera is left unchanged.
func (sy *Synchronizer) Handle(ev *navigator.HighlightEvent) {
	cv := ev.Curve()
	if cv == nil {
		slog.Debug("navsync: ignoring highlight event without a curve")
		return
	}
	mesh := ev.Mesh
	al := cv.Alignment

	sy.Secondary.Clear()
	sy.Secondary.Draw(al.Model, al)
	sy.Secondary.Highlighter().Select(mesh)

	sy.Overview.Highlighter().Select(mesh)

	c3d := cv.Counterpart(alignment.Absolute)
	if c3d == nil {
		return
	}
	sp, ok := c3d.Mesh.Geometry.ComputeBoundingSphere()
	if !ok {
		return
	}
	sy.last = sy.Camera.FitToSphere(sp, true)
}

// Last returns the animation of the last framing request, which is
// nil before any request.
func (sy *Synchronizer) Last() *camera.Animation {
	return sy.last
}
