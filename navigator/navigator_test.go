// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navigator

import (
	"image/color"
	"testing"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/camera"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel returns a model with two alignments: Road-1 along y = 0
// with three curves and Road-2 along y = 50 with two curves.
func testModel(t *testing.T) *alignment.Model {
	m := alignment.NewModel("test")
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
	return m
}

func TestDraw(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Draw(m)
	assert.Len(t, nv.Drawn(), 5)
	assert.Equal(t, m.Alignments(), nv.DrawnAlignments())

	nv.Clear()
	assert.Empty(t, nv.Drawn())
	nv.Clear()
	assert.Empty(t, nv.Drawn())

	r2 := m.Alignment("Road-2")
	nv.Draw(m, r2)
	assert.Equal(t, r2.Curves(alignment.Horizontal), nv.Drawn())
	nv.Draw(m, r2)
	assert.Len(t, nv.Drawn(), 2)

	assert.True(t, nv.IsDrawn(r2.CurveAt(alignment.Vertical, 1)))
	assert.False(t, nv.IsDrawn(m.Alignment("Road-1").CurveAt(alignment.Horizontal, 0)))
	assert.False(t, nv.IsDrawn(nil))

	other := testModel(t)
	nv.Draw(m, other.Alignment("Road-1"))
	assert.Len(t, nv.Drawn(), 2)

	nv.Draw(nil)
	nv.Draw(nil, r2, nil)
	assert.Equal(t, r2.Curves(alignment.Horizontal), nv.Drawn())
}

func TestDrawKinds(t *testing.T) {
	m := testModel(t)
	nv := New3D()
	nv.Draw(m)
	assert.Len(t, nv.Drawn(), 3)
	for _, cv := range nv.Drawn() {
		assert.Equal(t, alignment.Absolute, cv.Kind)
	}
	el := NewElevation()
	el.Draw(m, m.Alignment("Road-1"))
	assert.Equal(t, m.Alignment("Road-1").Curves(alignment.Vertical), el.Drawn())
	assert.Equal(t, "elevation navigator (vertical, 1 alignments)", el.String())
}

func TestDrawFitsCamera(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Camera = camera.NewControls()
	nv.Draw(m)
	assert.Equal(t, math32.Vec3(15, 25, 0), nv.Camera.Camera().Target)
	assert.False(t, nv.Camera.Animating())

	bb := nv.Bounds()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(30, 50, 0), bb.Max)

	nv.Clear()
	assert.True(t, nv.Bounds().IsEmpty())
}

func TestPick(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Draw(m)
	var events []*HighlightEvent
	nv.OnHighlight(func(ev *HighlightEvent) { events = append(events, ev) })

	mesh := nv.Pick(math32.Vec3(15, 1, 0), 2)
	require.NotNil(t, mesh)
	assert.Equal(t, "Road-1/horizontal/1", mesh.Curve.ID())
	assert.Same(t, mesh, nv.Highlighter().Selected())
	require.Len(t, events, 1)
	assert.Same(t, mesh, events[0].Mesh)
	assert.Same(t, mesh.Curve, events[0].Curve())
	assert.Same(t, nv, events[0].Navigator)
	assert.Equal(t, math32.Vec3(15, 1, 0), events[0].Point)

	assert.Nil(t, nv.Pick(math32.Vec3(15, 25, 0), 2))
	assert.Len(t, events, 1)
	assert.Same(t, mesh, nv.Highlighter().Selected())

	mesh2 := nv.Pick(math32.Vec3(5, 49, 0), 2)
	require.NotNil(t, mesh2)
	ref, ok := nv.Highlighter().SelectedRef()
	assert.True(t, ok)
	assert.Equal(t, alignment.CurveRef{Alignment: "Road-2", Index: 0}, ref)
	assert.Len(t, events, 2)
}

func TestHover(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Draw(m)
	var n int
	nv.OnHighlight(func(ev *HighlightEvent) { n++ })

	mesh := nv.Hover(math32.Vec3(25, 0.5, 0), 1)
	require.NotNil(t, mesh)
	assert.Same(t, mesh, nv.Highlighter().Hovered())
	assert.Nil(t, nv.Highlighter().Selected())
	assert.Nil(t, nv.Hover(math32.Vec3(25, 20, 0), 1))
	assert.Nil(t, nv.Highlighter().Hovered())
	assert.Equal(t, 0, n)
}

func TestSelect(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Draw(m, m.Alignment("Road-1"))
	var got *HighlightEvent
	nv.OnHighlight(func(ev *HighlightEvent) { got = ev })

	assert.False(t, nv.Select(m.Alignment("Road-2").CurveAt(alignment.Horizontal, 0).Mesh))
	assert.Nil(t, got)
	assert.False(t, nv.Select(nil))

	mesh := m.Alignment("Road-1").CurveAt(alignment.Horizontal, 2).Mesh
	assert.True(t, nv.Select(mesh))
	require.NotNil(t, got)
	assert.Same(t, mesh, got.Mesh)
	assert.Equal(t, math32.Vec3(20, 0, 0), got.Point)
}

func TestListeners(t *testing.T) {
	m := testModel(t)
	nv := NewPlan()
	nv.Draw(m)
	var order []string
	nv.OnHighlight(func(ev *HighlightEvent) { order = append(order, "first") })
	nv.OnHighlight(func(ev *HighlightEvent) { order = append(order, "second") })
	assert.Equal(t, 2, nv.NumListeners())

	nv.Pick(math32.Vec3(1, 0, 0), 1)
	assert.Equal(t, []string{"second", "first"}, order)

	order = nil
	nv.OnHighlight(func(ev *HighlightEvent) {
		order = append(order, "stop")
		ev.SetHandled()
	})
	nv.Pick(math32.Vec3(1, 0, 0), 1)
	assert.Equal(t, []string{"stop"}, order)
}

func TestHighlighter(t *testing.T) {
	m := testModel(t)
	hl := Highlighter{Kind: alignment.Absolute}
	hl.Defaults()
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x64, B: 0x00, A: 0xff}, hl.SelectColor)
	assert.Equal(t, color.RGBA{R: 0x64, G: 0x64, B: 0xff, A: 0xff}, hl.HoverColor)

	_, ok := hl.SelectedRef()
	assert.False(t, ok)
	assert.Nil(t, hl.Display())

	r1 := m.Alignment("Road-1")
	plan := r1.CurveAt(alignment.Horizontal, 1)
	hl.Select(plan.Mesh)
	assert.Same(t, plan.Mesh, hl.Selected())
	assert.Same(t, r1.CurveAt(alignment.Absolute, 1).Mesh, hl.Display())

	r2plan := m.Alignment("Road-2").CurveAt(alignment.Horizontal, 0)
	hl.Select(r2plan.Mesh)
	assert.Same(t, r2plan.Mesh, hl.Display())

	hl.Hover(plan.Mesh)
	hl.Clear()
	assert.Nil(t, hl.Selected())
	assert.Nil(t, hl.Hovered())

	hl.Select(plan.Mesh)
	hl.Unselect()
	assert.Nil(t, hl.Selected())
}
