// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/math32"
)

// Format is a model file encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromFilename returns the [Format] for the extension of the given file.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("alignment: unsupported model file extension for %q", filename)
}

// modelFile is the file representation of a [Model].
type modelFile struct {
	Name       string          `json:"name" toml:"name" yaml:"name"`
	Alignments []alignmentFile `json:"alignments" toml:"alignments" yaml:"alignments"`
}

type alignmentFile struct {
	Name       string      `json:"name" toml:"name" yaml:"name"`
	Horizontal []curveFile `json:"horizontal,omitempty" toml:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   []curveFile `json:"vertical,omitempty" toml:"vertical,omitempty" yaml:"vertical,omitempty"`
	Absolute   []curveFile `json:"absolute,omitempty" toml:"absolute,omitempty" yaml:"absolute,omitempty"`
}

type curveFile struct {
	Type   string      `json:"type" toml:"type" yaml:"type"`
	Points [][]float32 `json:"points" toml:"points" yaml:"points"`
}

func (af *alignmentFile) kinds() [KindN]*[]curveFile {
	return [KindN]*[]curveFile{&af.Horizontal, &af.Vertical, &af.Absolute}
}

// codec has the model file functions of one [Format].
type codec struct {
	open  func(v any, filename string) error
	read  func(v any, reader io.Reader) error
	save  func(v any, filename string) error
	write func(v any, writer io.Writer) error
}

var codecs = map[Format]codec{
	JSON: {jsonx.Open, jsonx.Read, jsonx.Save, jsonx.Write},
	TOML: {tomlx.Open, tomlx.Read, tomlx.Save, tomlx.Write},
	YAML: {yamlx.Open, yamlx.Read, yamlx.Save, yamlx.Write},
}

func codecFor(format Format) (codec, error) {
	cd, ok := codecs[format]
	if !ok {
		return codec{}, fmt.Errorf("alignment: unknown model file format %q", format)
	}
	return cd, nil
}

// Open reads a model from the given file, with the format
// determined by the file extension.
func Open(filename string) (*Model, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err := codecs[format].open(&mf, filename); err != nil {
		return nil, fmt.Errorf("alignment.Open %q: %w", filename, err)
	}
	m, err := mf.model()
	if err != nil {
		return nil, fmt.Errorf("alignment.Open %q: %w", filename, err)
	}
	return m, nil
}

// Read reads a model in the given format from the given reader.
func Read(r io.Reader, format Format) (*Model, error) {
	cd, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err := cd.read(&mf, r); err != nil {
		return nil, err
	}
	return mf.model()
}

// ReadBytes reads a model in the given format from the given bytes.
func ReadBytes(b []byte, format Format) (*Model, error) {
	return Read(bytes.NewReader(b), format)
}

func (mf *modelFile) model() (*Model, error) {
	m := NewModel(mf.Name)
	var errs []error
	for _, af := range mf.Alignments {
		al, err := m.AddAlignment(af.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for kind, cfs := range af.kinds() {
			for i, cf := range *cfs {
				pts, err := cf.points()
				if err != nil {
					errs = append(errs, fmt.Errorf("alignment %q %s curve %d: %w", af.Name, Kind(kind), i, err))
					continue
				}
				al.AddCurve(Kind(kind), cf.Type, pts...)
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

func (cf *curveFile) points() ([]math32.Vector3, error) {
	pts := make([]math32.Vector3, len(cf.Points))
	for i, p := range cf.Points {
		switch len(p) {
		case 2:
			pts[i] = math32.Vec3(p[0], p[1], 0)
		case 3:
			pts[i] = math32.Vec3(p[0], p[1], p[2])
		default:
			return nil, fmt.Errorf("point %d has %d coordinates; must have 2 or 3", i, len(p))
		}
	}
	return pts, nil
}

// Save writes the given model to the given file, with the format
// determined by the file extension.
func Save(m *Model, filename string) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return codecs[format].save(newModelFile(m), filename)
}

// Write writes the given model in the given format to the given writer.
func Write(m *Model, w io.Writer, format Format) error {
	cd, err := codecFor(format)
	if err != nil {
		return err
	}
	return cd.write(newModelFile(m), w)
}

func newModelFile(m *Model) *modelFile {
	mf := &modelFile{Name: m.Name}
	for _, al := range m.Alignments() {
		af := alignmentFile{Name: al.Name}
		for kind, cfs := range af.kinds() {
			for _, cv := range al.Curves(Kind(kind)) {
				cf := curveFile{Type: cv.Type}
				for _, p := range cv.Mesh.Geometry.Points {
					cf.Points = append(cf.Points, []float32{p.X, p.Y, p.Z})
				}
				*cfs = append(*cfs, cf)
			}
		}
		mf.Alignments = append(mf.Alignments, af)
	}
	return mf
}
