// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the polyline geometry and bounding volumes
// used by civil alignment curves, navigator views, and cameras.
package geom

import (
	"cogentcore.org/core/math32"
)

// Sphere is a bounding sphere defined by a center and a radius.
type Sphere struct {

	// Center is the center point of the sphere.
	Center math32.Vector3

	// Radius is the radius of the sphere, which can be 0
	// for a sphere enclosing a single point.
	Radius float32
}

// SphereFromBox returns the sphere that encloses the given box,
// centered on the box center. It returns false if the box is empty.
func SphereFromBox(b math32.Box3) (Sphere, bool) {
	if b.IsEmpty() {
		return Sphere{}, false
	}
	return Sphere{Center: b.Center(), Radius: b.Size().Length() * 0.5}, true
}

// Box returns the axis-aligned box enclosing the sphere.
func (sp Sphere) Box() math32.Box3 {
	r := math32.Vec3(sp.Radius, sp.Radius, sp.Radius)
	return math32.Box3{Min: sp.Center.Sub(r), Max: sp.Center.Add(r)}
}

// Finite returns whether all coordinates of the given point are finite.
func Finite(v math32.Vector3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Geometry is the vertex data of a renderable polyline, with bounding
// volumes that are only computed on demand and cached until the points change.
type Geometry struct {

	// Points are the ordered vertices of the polyline.
	Points []math32.Vector3

	// BoundingBox is the last computed bounding box, or nil if it has
	// not been computed or the geometry is degenerate.
	BoundingBox *math32.Box3

	// BoundingSphere is the last computed bounding sphere, or nil if it has
	// not been computed or the geometry is degenerate.
	BoundingSphere *Sphere
}

// NewGeometry returns a new [Geometry] with the given points.
func NewGeometry(points ...math32.Vector3) *Geometry {
	return &Geometry{Points: points}
}

// SetPoints sets the points and invalidates any computed bounds.
func (g *Geometry) SetPoints(points ...math32.Vector3) {
	g.Points = points
	g.BoundingBox = nil
	g.BoundingSphere = nil
}

// IsDegenerate returns whether the geometry has no points or
// contains a non-finite point, in which case it has no bounds.
func (g *Geometry) IsDegenerate() bool {
	if len(g.Points) == 0 {
		return true
	}
	for _, p := range g.Points {
		if !Finite(p) {
			return true
		}
	}
	return false
}

// ComputeBoundingBox computes, caches, and returns the bounding box
// of the points. It returns false if the geometry is degenerate.
func (g *Geometry) ComputeBoundingBox() (math32.Box3, bool) {
	g.BoundingBox = nil
	if g.IsDegenerate() {
		return math32.B3Empty(), false
	}
	bb := math32.B3Empty()
	bb.ExpandByPoints(g.Points)
	g.BoundingBox = &bb
	return bb, true
}

// ComputeBoundingSphere computes, caches, and returns the bounding sphere
// of the points: the center of the bounding box with the radius
// to the farthest point. It returns false if the geometry is degenerate.
func (g *Geometry) ComputeBoundingSphere() (Sphere, bool) {
	g.BoundingSphere = nil
	bb, ok := g.ComputeBoundingBox()
	if !ok {
		return Sphere{}, false
	}
	sp := Sphere{Center: bb.Center()}
	for _, p := range g.Points {
		sp.Radius = math32.Max(sp.Radius, sp.Center.DistanceTo(p))
	}
	g.BoundingSphere = &sp
	return sp, true
}

// Length returns the total length of the polyline.
func (g *Geometry) Length() float32 {
	var l float32
	for i := 1; i < len(g.Points); i++ {
		l += g.Points[i-1].DistanceTo(g.Points[i])
	}
	return l
}

// Distance returns the shortest distance from the given point to the
// polyline, along with the closest point on it. It returns +Inf for
// geometry without points.
func (g *Geometry) Distance(p math32.Vector3) (float32, math32.Vector3) {
	switch len(g.Points) {
	case 0:
		return math32.Infinity, math32.Vector3{}
	case 1:
		return p.DistanceTo(g.Points[0]), g.Points[0]
	}
	best := math32.Infinity
	var closest math32.Vector3
	for i := 1; i < len(g.Points); i++ {
		c := ClosestOnSegment(p, g.Points[i-1], g.Points[i])
		if d := p.DistanceTo(c); d < best {
			best, closest = d, c
		}
	}
	return best, closest
}

// NearestVertex returns the vertex closest to the given point and its distance.
// It returns +Inf for geometry without points.
func (g *Geometry) NearestVertex(p math32.Vector3) (math32.Vector3, float32) {
	best := math32.Infinity
	var v math32.Vector3
	for _, pt := range g.Points {
		if d := p.DistanceTo(pt); d < best {
			best, v = d, pt
		}
	}
	return v, best
}

// ClosestOnSegment returns the point on segment ab closest to p.
func ClosestOnSegment(p, a, b math32.Vector3) math32.Vector3 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := math32.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.MulScalar(t))
}
