// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure provides angle and length measurement tools that
// build measurements from picked points, optionally snapped to the
// vertices of alignment curves.
package measure

import (
	"fmt"
	"slices"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/core/math32"
)

// Measurement is a committed measurement.
type Measurement interface {

	// Anchor is the point a measurement is picked by for deletion.
	Anchor() math32.Vector3

	// Label is the text shown for the measurement.
	Label() string
}

// Snapper snaps points to the nearest curve vertex of a model.
type Snapper struct {

	// Model is the model to snap to; nil disables snapping.
	Model *alignment.Model

	// Kind is the kind of curves whose vertices are snapped to.
	Kind alignment.Kind

	// Distance is the largest distance a point is snapped over.
	Distance float32
}

// Snap returns the vertex nearest to the given point if it is within
// the snapping distance, and the point itself otherwise.
func (sn *Snapper) Snap(p math32.Vector3) math32.Vector3 {
	if sn.Model == nil || sn.Distance <= 0 {
		return p
	}
	best := sn.Distance
	res := p
	for _, cv := range sn.Model.Curves(sn.Kind) {
		v, d := cv.Mesh.Geometry.NearestVertex(p)
		if d <= best {
			best, res = d, v
		}
	}
	return res
}

// Tool builds measurements of one type from a fixed number of picked points.
type Tool[M Measurement] struct {

	// Enabled is whether the tool creates and deletes measurements.
	Enabled bool

	// Snap snaps picked points to model vertices.
	Snap Snapper

	// Tolerance is the largest distance from a point to the anchor of
	// a measurement for [Tool.Delete] to remove it.
	Tolerance float32

	// OnCreate, if set, is called with every committed measurement.
	OnCreate func(m M)

	// points is the number of points of one measurement.
	points int

	// build makes a measurement from its points.
	build func(pts []math32.Vector3) M

	pending []math32.Vector3
	list    []M
}

// Create adds a picked point to the measurement in progress. When the
// measurement has all of its points, it is committed and returned with true.
// A disabled tool does nothing.
func (tl *Tool[M]) Create(p math32.Vector3) (M, bool) {
	var zero M
	if !tl.Enabled {
		return zero, false
	}
	tl.pending = append(tl.pending, tl.Snap.Snap(p))
	if len(tl.pending) < tl.points {
		return zero, false
	}
	m := tl.build(tl.pending)
	tl.pending = nil
	tl.list = append(tl.list, m)
	if tl.OnCreate != nil {
		tl.OnCreate(m)
	}
	return m, true
}

// Pending returns the points of the measurement in progress.
func (tl *Tool[M]) Pending() []math32.Vector3 {
	return slices.Clone(tl.pending)
}

// Cancel discards the measurement in progress.
func (tl *Tool[M]) Cancel() {
	tl.pending = nil
}

// Delete removes the measurement whose anchor is nearest to the given
// point within the tolerance, returning whether one was removed.
// A disabled tool does nothing.
func (tl *Tool[M]) Delete(p math32.Vector3) bool {
	if !tl.Enabled {
		return false
	}
	idx := -1
	best := tl.Tolerance
	for i, m := range tl.list {
		if d := p.DistanceTo(m.Anchor()); d <= best {
			idx, best = i, d
		}
	}
	if idx < 0 {
		return false
	}
	tl.list = slices.Delete(tl.list, idx, idx+1)
	return true
}

// DeleteAll removes all measurements and the measurement in progress.
func (tl *Tool[M]) DeleteAll() {
	tl.list = nil
	tl.pending = nil
}

// List returns the committed measurements in creation order.
func (tl *Tool[M]) List() []M {
	return slices.Clone(tl.list)
}

// Angle is an angle between the rays from a vertex to two points.
type Angle struct {
	A, Vertex, C math32.Vector3
}

// NewAngles returns a new disabled angle measurement tool.
func NewAngles() *Tool[Angle] {
	return &Tool[Angle]{
		Tolerance: 0.5,
		points:    3,
		build: func(pts []math32.Vector3) Angle {
			return Angle{A: pts[0], Vertex: pts[1], C: pts[2]}
		},
	}
}

// Radians returns the angle in radians, which is 0 if either
// point coincides with the vertex.
func (an Angle) Radians() float32 {
	u := an.A.Sub(an.Vertex)
	w := an.C.Sub(an.Vertex)
	lu, lw := u.Length(), w.Length()
	if lu == 0 || lw == 0 {
		return 0
	}
	return math32.Acos(math32.Clamp(u.Dot(w)/(lu*lw), -1, 1))
}

// Degrees returns the angle in degrees.
func (an Angle) Degrees() float32 {
	return math32.RadToDeg(an.Radians())
}

func (an Angle) Anchor() math32.Vector3 {
	return an.Vertex
}

func (an Angle) Label() string {
	return fmt.Sprintf("%.2f°", an.Degrees())
}

// Length is the distance between two points.
type Length struct {
	A, B math32.Vector3
}

// NewLengths returns a new disabled length measurement tool.
func NewLengths() *Tool[Length] {
	return &Tool[Length]{
		Tolerance: 0.5,
		points:    2,
		build: func(pts []math32.Vector3) Length {
			return Length{A: pts[0], B: pts[1]}
		},
	}
}

// Value returns the length.
func (ln Length) Value() float32 {
	return ln.A.DistanceTo(ln.B)
}

// Anchor is the midpoint of the length.
func (ln Length) Anchor() math32.Vector3 {
	return ln.A.Add(ln.B).MulScalar(0.5)
}

func (ln Length) Label() string {
	return fmt.Sprintf("%.2f m", ln.Value())
}
