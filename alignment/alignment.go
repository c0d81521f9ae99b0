// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alignment provides the data model of civil alignments:
// named paths made of ordered curve segments, each with its own
// renderable mesh in plan, elevation, and absolute 3D form.
package alignment

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/civil/geom"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
)

// Kind is the representation of the curves of an alignment.
type Kind int32

const (
	// Horizontal curves are the plan projection of the alignment.
	Horizontal Kind = iota

	// Vertical curves are the elevation profile of the alignment,
	// in station / elevation coordinates.
	Vertical

	// Absolute curves are the full 3D path of the alignment.
	Absolute

	// KindN is the number of kinds.
	KindN
)

var kindNames = [KindN]string{"horizontal", "vertical", "absolute"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// ParseKind returns the [Kind] with the given name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("alignment.ParseKind: unknown kind %q", s)
}

// Model is a collection of uniquely named alignments, in the order
// they were added.
type Model struct {

	// Name is the name of the model.
	Name string

	alignments keylist.List[string, *Alignment]
}

// NewModel returns a new empty [Model] with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddAlignment adds a new alignment with the given name,
// returning an error if the name is empty or already used.
func (m *Model) AddAlignment(name string) (*Alignment, error) {
	if name == "" {
		return nil, errors.New("alignment.Model: alignment name is empty")
	}
	al := &Alignment{Name: name, Model: m}
	if err := m.alignments.Add(name, al); err != nil {
		return nil, fmt.Errorf("alignment.Model %q: %w", m.Name, err)
	}
	return al, nil
}

// Alignment returns the alignment with the given name, or nil.
func (m *Model) Alignment(name string) *Alignment {
	return m.alignments.At(name)
}

// Alignments returns all alignments in model order.
func (m *Model) Alignments() []*Alignment {
	return slices.Clone(m.alignments.Values)
}

// NumAlignments returns the number of alignments.
func (m *Model) NumAlignments() int {
	return m.alignments.Len()
}

// Curves returns all curves of the given kind, in model order.
func (m *Model) Curves(kind Kind) []*Curve {
	var cvs []*Curve
	for _, al := range m.alignments.Values {
		cvs = append(cvs, al.Curves(kind)...)
	}
	return cvs
}

// Alignment is a named path composed of ordered curve segments.
// It owns its curves: each curve points back to exactly one alignment,
// and the order of the curves never changes once added.
type Alignment struct {

	// Name is the unique name of the alignment within its model.
	Name string

	// Model is the model that contains this alignment.
	Model *Model

	curves [KindN][]*Curve
}

// AddCurve appends a new curve of the given kind and segment type
// with the given points, returning it.
func (al *Alignment) AddCurve(kind Kind, typ string, points ...math32.Vector3) *Curve {
	cv := &Curve{Alignment: al, Kind: kind, Index: len(al.curves[kind]), Type: typ}
	cv.Mesh = &Mesh{Curve: cv, Geometry: geom.NewGeometry(points...)}
	al.curves[kind] = append(al.curves[kind], cv)
	return cv
}

// Curves returns the curves of the given kind, in order.
func (al *Alignment) Curves(kind Kind) []*Curve {
	return slices.Clone(al.curves[kind])
}

// NumCurves returns the number of curves of the given kind.
func (al *Alignment) NumCurves(kind Kind) int {
	return len(al.curves[kind])
}

// CurveAt returns the curve of the given kind at the given index,
// or nil if there is no such curve.
func (al *Alignment) CurveAt(kind Kind, index int) *Curve {
	if index < 0 || index >= len(al.curves[kind]) {
		return nil
	}
	return al.curves[kind][index]
}

func (al *Alignment) String() string {
	return al.Name
}

// CurveRef is the identity of a curve shared by all of its kinds:
// the same segment index in the same alignment. Views that draw
// different kinds compare their highlights through it.
type CurveRef struct {
	Alignment string
	Index     int
}

func (cr CurveRef) String() string {
	return fmt.Sprintf("%s[%d]", cr.Alignment, cr.Index)
}

// Curve is one segment of an alignment.
type Curve struct {

	// Alignment is the alignment that owns this curve.
	Alignment *Alignment

	// Kind is the representation of this curve.
	Kind Kind

	// Index is the position of this curve in the alignment's
	// ordered sequence of curves of the same kind.
	Index int

	// Type is the segment type, such as LINE, CIRCULARARC, or CLOTHOID.
	Type string

	// Mesh is the renderable representation of the curve.
	Mesh *Mesh
}

// Ref returns the kind-independent identity of the curve.
func (cv *Curve) Ref() CurveRef {
	return CurveRef{Alignment: cv.Alignment.Name, Index: cv.Index}
}

// ID returns a unique identifier of the curve within its model.
func (cv *Curve) ID() string {
	return fmt.Sprintf("%s/%s/%d", cv.Alignment.Name, cv.Kind, cv.Index)
}

// Length returns the length of the curve's polyline.
func (cv *Curve) Length() float32 {
	return cv.Mesh.Geometry.Length()
}

// Counterpart returns the curve of the given kind at the same index
// in the same alignment, or nil if there is none.
func (cv *Curve) Counterpart(kind Kind) *Curve {
	return cv.Alignment.CurveAt(kind, cv.Index)
}

func (cv *Curve) String() string {
	return cv.ID()
}

// Mesh is the renderable representation of a curve.
type Mesh struct {

	// Curve is the curve this mesh renders.
	Curve *Curve

	// Geometry is the vertex data of the mesh.
	Geometry *geom.Geometry
}
