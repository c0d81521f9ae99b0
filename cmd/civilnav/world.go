// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/camera"
	"cogentcore.org/civil/geom"
	"cogentcore.org/civil/measure"
	"cogentcore.org/civil/navigator"
	"cogentcore.org/civil/navsync"
	"cogentcore.org/civil/remote"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/muesli/termenv"
)

// world has the views of a model: the plan and elevation navigators
// with their own 2D cameras, and the 3D navigator with the main camera.
type world struct {
	config    *Config
	model     *alignment.Model
	plan      *navigator.Navigator
	elevation *navigator.Navigator
	overview  *navigator.Navigator
	camera    *camera.Controls
	sync      *navsync.Synchronizer
	angles    *measure.Tool[measure.Angle]
	lengths   *measure.Tool[measure.Length]

	// frame is the last framing request of the main camera.
	frame *geom.Sphere
}

func newWorld(c *Config, m *alignment.Model) (*world, error) {
	w := &world{
		config:    c,
		plan:      navigator.NewPlan(),
		elevation: navigator.NewElevation(),
		overview:  navigator.New3D(),
		camera:    camera.NewControls(),
		angles:    measure.NewAngles(),
		lengths:   measure.NewLengths(),
	}
	w.camera.SetLookAt(math32.Vec3(5, 5, 5), math32.Vec3(0, 0, 0))
	w.camera.OnFrame = func(sp geom.Sphere, animate bool) {
		w.frame = &sp
		slog.Debug("framing camera", "center", sp.Center, "radius", sp.Radius, "animate", animate)
	}
	w.overview.Camera = w.camera
	w.plan.Camera = camera.NewControls()
	w.elevation.Camera = camera.NewControls()

	selc := errors.Log1(colors.FromHex(c.SelectColor))
	hovc := errors.Log1(colors.FromHex(c.HoverColor))
	for _, nv := range w.navigators() {
		hl := nv.Highlighter()
		hl.SelectColor = selc
		hl.HoverColor = hovc
	}

	var err error
	w.sync, err = navsync.New(navsync.Config{
		Primary:   w.plan,
		Secondary: w.elevation,
		Overview:  w.overview,
		Camera:    w.camera,
	})
	if err != nil {
		return nil, err
	}
	w.sync.Wire()
	w.reload(m)
	return w, nil
}

func (w *world) navigators() []*navigator.Navigator {
	return []*navigator.Navigator{w.plan, w.elevation, w.overview}
}

// reload clears all views and draws the given model in them.
func (w *world) reload(m *alignment.Model) {
	w.model = m
	for _, sn := range []*measure.Snapper{&w.angles.Snap, &w.lengths.Snap} {
		sn.Model = m
		sn.Kind = alignment.Absolute
		sn.Distance = 1
	}
	for _, nv := range w.navigators() {
		nv.Clear()
		nv.Draw(m)
	}
}

// selectCurve selects the plan curve with the given alignment and index
// as if it had been picked in the plan view.
func (w *world) selectCurve(name string, index int) error {
	al := w.model.Alignment(name)
	if al == nil {
		return fmt.Errorf("alignment %q not found in model %q", name, w.model.Name)
	}
	cv := al.CurveAt(alignment.Horizontal, index)
	if cv == nil {
		return fmt.Errorf("alignment %q has no plan curve %d (it has %d)", name, index, al.NumCurves(alignment.Horizontal))
	}
	w.frame = nil
	if !w.plan.Select(cv.Mesh) {
		return fmt.Errorf("curve %s is not drawn in the plan view", cv)
	}
	return nil
}

// feed broadcasts the highlight events of the plan and elevation views
// through the given hub.
func (w *world) feed(hub *remote.Hub) {
	hub.Listen(w.plan)
	hub.Listen(w.elevation)
}

// pick picks the curve of the plan or elevation view nearest to the given
// point within the given tolerance. Picking in the plan drives the other views.
func (w *world) pick(view string, p math32.Vector3, tolerance float32) (*alignment.Mesh, error) {
	var nv *navigator.Navigator
	switch view {
	case w.plan.Name:
		nv = w.plan
	case w.elevation.Name:
		nv = w.elevation
	default:
		return nil, fmt.Errorf("unknown view %q (must be %s or %s)", view, w.plan.Name, w.elevation.Name)
	}
	mesh := nv.Pick(p, tolerance)
	if mesh == nil {
		return nil, fmt.Errorf("no %s curve within %g of %v", nv.Name, tolerance, p)
	}
	return mesh, nil
}

// report writes the state of the views to the given writer.
func (w *world) report(wr io.Writer) error {
	out := termenv.NewOutput(wr)
	sel := out.Color(w.config.SelectColor)
	title := func(s string) termenv.Style { return out.String(s).Bold() }

	ref, ok := w.plan.Highlighter().SelectedRef()
	if !ok {
		_, err := fmt.Fprintln(out, "no curve selected")
		return err
	}
	fmt.Fprintf(out, "%s %s\n", title("selected:"), out.String(ref.String()).Foreground(sel))

	fmt.Fprintln(out, title("elevation:"))
	for _, cv := range w.elevation.Drawn() {
		line := fmt.Sprintf("  %-20s %-18s %8.2f m", cv.ID(), cv.Type, cv.Length())
		if cv.Ref() == ref {
			fmt.Fprintln(out, out.String(line).Foreground(sel))
			continue
		}
		fmt.Fprintln(out, line)
	}

	for _, nv := range w.navigators() {
		hl := "none"
		if r, ok := nv.Highlighter().SelectedRef(); ok {
			hl = r.String()
		}
		fmt.Fprintf(out, "%s %s highlight %s\n", title(nv.Name+":"), nv.Kind, hl)
	}

	cm := w.camera.Camera()
	if w.frame == nil {
		fmt.Fprintf(out, "%s unchanged (no 3D geometry for %s)\n", title("camera:"), ref)
	} else {
		fmt.Fprintf(out, "%s framed center %v radius %.2f, target %v distance %.2f\n",
			title("camera:"), w.frame.Center, w.frame.Radius, cm.Target, cm.Distance())
	}
	return nil
}

// measure adds the given point to the angle or length tool and returns
// the label of the measurement it completes, if any.
func (w *world) measure(tool string, p math32.Vector3) (string, error) {
	switch tool {
	case "angle":
		w.angles.Enabled = true
		if an, ok := w.angles.Create(p); ok {
			return an.Label(), nil
		}
	case "length":
		w.lengths.Enabled = true
		if ln, ok := w.lengths.Create(p); ok {
			return ln.Label(), nil
		}
	default:
		return "", fmt.Errorf("unknown measure tool %q (must be angle or length)", tool)
	}
	return "", nil
}
