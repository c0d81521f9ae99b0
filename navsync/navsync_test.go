// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navsync

import (
	"testing"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/camera"
	"cogentcore.org/civil/geom"
	"cogentcore.org/civil/navigator"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type views struct {
	model     *alignment.Model
	plan      *navigator.Navigator
	elevation *navigator.Navigator
	overview  *navigator.Navigator
	camera    *camera.Controls
	sync      *Synchronizer
}

// newViews returns wired views of a model where Road-1 has three curves of
// every kind and Road-2 has two, with an empty 3D geometry at index 1.
func newViews(t *testing.T) *views {
	m := alignment.NewModel("road")
	r1, err := m.AddAlignment("Road-1")
	require.NoError(t, err)
	r2, err := m.AddAlignment("Road-2")
	require.NoError(t, err)
	for i := range 3 {
		x := float32(i * 10)
		r1.AddCurve(alignment.Horizontal, "LINE", math32.Vec3(x, 0, 0), math32.Vec3(x+10, 0, 0))
		r1.AddCurve(alignment.Vertical, "CONSTANTGRADIENT", math32.Vec3(x, 100, 0), math32.Vec3(x+10, 101, 0))
		r1.AddCurve(alignment.Absolute, "LINE", math32.Vec3(x, 0, 100), math32.Vec3(x+10, 0, 101))
	}
	for i := range 2 {
		x := float32(i * 10)
		r2.AddCurve(alignment.Horizontal, "LINE", math32.Vec3(x, 50, 0), math32.Vec3(x+10, 50, 0))
		r2.AddCurve(alignment.Vertical, "CONSTANTGRADIENT", math32.Vec3(x, 90, 0), math32.Vec3(x+10, 91, 0))
	}
	r2.AddCurve(alignment.Absolute, "LINE", math32.Vec3(0, 50, 90), math32.Vec3(10, 50, 91))
	r2.AddCurve(alignment.Absolute, "CLOTHOID")

	vs := &views{
		model:     m,
		plan:      navigator.NewPlan(),
		elevation: navigator.NewElevation(),
		overview:  navigator.New3D(),
		camera:    camera.NewControls(),
	}
	vs.plan.Draw(m)
	vs.elevation.Draw(m)
	vs.overview.Draw(m)
	vs.sync, err = New(Config{
		Primary:   vs.plan,
		Secondary: vs.elevation,
		Overview:  vs.overview,
		Camera:    vs.camera,
	})
	require.NoError(t, err)
	vs.sync.Wire()
	return vs
}

func (vs *views) selectCurve(t *testing.T, name string, index int) *alignment.Mesh {
	mesh := vs.model.Alignment(name).CurveAt(alignment.Horizontal, index).Mesh
	require.True(t, vs.plan.Select(mesh))
	return mesh
}

func TestSelectRoad1Curve2(t *testing.T) {
	vs := newViews(t)
	var frames []geom.Sphere
	vs.camera.OnFrame = func(sp geom.Sphere, animate bool) {
		assert.True(t, animate)
		frames = append(frames, sp)
	}
	mesh := vs.selectCurve(t, "Road-1", 2)

	r1 := vs.model.Alignment("Road-1")
	assert.Equal(t, r1.Curves(alignment.Vertical), vs.elevation.Drawn())
	assert.Equal(t, []*alignment.Alignment{r1}, vs.elevation.DrawnAlignments())

	ref, ok := vs.elevation.Highlighter().SelectedRef()
	assert.True(t, ok)
	assert.Equal(t, alignment.CurveRef{Alignment: "Road-1", Index: 2}, ref)
	assert.Same(t, mesh, vs.overview.Highlighter().Selected())
	assert.Same(t, r1.CurveAt(alignment.Absolute, 2).Mesh, vs.overview.Highlighter().Display())

	want, ok := r1.CurveAt(alignment.Absolute, 2).Mesh.Geometry.ComputeBoundingSphere()
	require.True(t, ok)
	require.Len(t, frames, 1)
	assert.Equal(t, want, frames[0])

	an := vs.sync.Last()
	require.NotNil(t, an)
	assert.Same(t, an, vs.camera.Active())
	assert.Equal(t, want.Center, an.To.Target)
}

func TestSecondaryDrawsOnlyOwningAlignment(t *testing.T) {
	vs := newViews(t)
	assert.Len(t, vs.elevation.Drawn(), 5)
	for _, al := range vs.model.Alignments() {
		for i := range al.NumCurves(alignment.Horizontal) {
			vs.selectCurve(t, al.Name, i)
			assert.Equal(t, al.Curves(alignment.Vertical), vs.elevation.Drawn())
			// the primary and overview are not filtered
			assert.Len(t, vs.plan.Drawn(), 5)
			assert.Len(t, vs.overview.Drawn(), 5)
		}
	}
}

func TestCrossViewConsistency(t *testing.T) {
	vs := newViews(t)
	for _, al := range vs.model.Alignments() {
		for i := range al.NumCurves(alignment.Horizontal) {
			vs.selectCurve(t, al.Name, i)
			pref, _ := vs.plan.Highlighter().SelectedRef()
			eref, eok := vs.elevation.Highlighter().SelectedRef()
			oref, ook := vs.overview.Highlighter().SelectedRef()
			assert.True(t, eok)
			assert.True(t, ook)
			assert.Equal(t, pref, eref)
			assert.Equal(t, pref, oref)
		}
	}
}

func TestIdempotent(t *testing.T) {
	vs := newViews(t)
	mesh := vs.selectCurve(t, "Road-2", 0)
	drawn := vs.elevation.Drawn()
	ref, _ := vs.elevation.Highlighter().SelectedRef()
	target := vs.sync.Last().To.Target

	require.True(t, vs.plan.Select(mesh))
	assert.Equal(t, drawn, vs.elevation.Drawn())
	ref2, _ := vs.elevation.Highlighter().SelectedRef()
	assert.Equal(t, ref, ref2)
	assert.Same(t, mesh, vs.overview.Highlighter().Selected())
	assert.Equal(t, target, vs.sync.Last().To.Target)
}

func TestEmptyGeometrySkipsFraming(t *testing.T) {
	vs := newViews(t)
	var frames int
	vs.camera.OnFrame = func(sp geom.Sphere, animate bool) { frames++ }
	before := vs.camera.Camera()

	vs.selectCurve(t, "Road-2", 1)

	r2 := vs.model.Alignment("Road-2")
	assert.Equal(t, r2.Curves(alignment.Vertical), vs.elevation.Drawn())
	ref, ok := vs.elevation.Highlighter().SelectedRef()
	assert.True(t, ok)
	assert.Equal(t, alignment.CurveRef{Alignment: "Road-2", Index: 1}, ref)
	oref, _ := vs.overview.Highlighter().SelectedRef()
	assert.Equal(t, ref, oref)

	assert.Equal(t, 0, frames)
	assert.Nil(t, vs.sync.Last())
	assert.False(t, vs.camera.Animating())
	assert.Equal(t, before, vs.camera.Camera())
	assert.Nil(t, r2.CurveAt(alignment.Absolute, 1).Mesh.Geometry.BoundingSphere)
}

func TestLastFramingWins(t *testing.T) {
	vs := newViews(t)
	vs.selectCurve(t, "Road-1", 0)
	first := vs.sync.Last()
	vs.camera.Step(vs.camera.Duration / 3)
	vs.selectCurve(t, "Road-1", 1)
	second := vs.sync.Last()

	assert.True(t, first.Cancelled())
	assert.Same(t, second, vs.camera.Active())
	vs.camera.Finish()
	assert.Equal(t, second.To, vs.camera.Camera())
}

func TestPickDrivesSync(t *testing.T) {
	vs := newViews(t)
	mesh := vs.plan.Pick(math32.Vec3(5, 51, 0), 2)
	require.NotNil(t, mesh)
	assert.Equal(t, vs.model.Alignment("Road-2").Curves(alignment.Vertical), vs.elevation.Drawn())
	assert.NotNil(t, vs.sync.Last())

	// a miss leaves everything as it was
	assert.Nil(t, vs.plan.Pick(math32.Vec3(5, 25, 0), 2))
	assert.Same(t, mesh, vs.elevation.Highlighter().Selected())
}

func TestHandleWithoutCurve(t *testing.T) {
	vs := newViews(t)
	vs.sync.Handle(&navigator.HighlightEvent{})
	assert.Len(t, vs.elevation.Drawn(), 5)
	assert.Nil(t, vs.sync.Last())
}

func TestNewMissingBindings(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	for _, nm := range []string{"primary", "secondary", "overview", "camera"} {
		assert.ErrorContains(t, err, nm)
	}

	_, err = New(Config{Primary: navigator.NewPlan(), Secondary: navigator.NewElevation(), Overview: navigator.New3D()})
	assert.EqualError(t, err, "navsync: camera not found")
}

func TestMultipleSubscribers(t *testing.T) {
	vs := newViews(t)
	profile := navigator.NewElevation()
	sy, err := New(Config{Primary: vs.plan, Secondary: profile, Overview: vs.overview, Camera: camera.NewControls()})
	require.NoError(t, err)
	sy.Wire()

	vs.selectCurve(t, "Road-1", 1)
	r1 := vs.model.Alignment("Road-1")
	assert.Equal(t, r1.Curves(alignment.Vertical), vs.elevation.Drawn())
	assert.Equal(t, r1.Curves(alignment.Vertical), profile.Drawn())
}
