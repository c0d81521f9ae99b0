// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a view camera and controls that frame
// bounding volumes, either immediately or through an animation.
package camera

import (
	"cogentcore.org/core/math32"
)

// Camera defines the position and orientation of a view camera.
type Camera struct {

	// Pos is the location of the camera.
	Pos math32.Vector3

	// Target is the location the camera is pointing at.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32
}

// Defaults sets the default camera, looking at the origin
// from 0,0,10 with the Y axis up.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at the given target location with the given
// up direction. A zero up direction means the Y axis.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
}

// LookAtOrigin points the camera at the origin with the Y axis up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// SetLookAt moves the camera to the given position and points it at the given target.
func (cm *Camera) SetLookAt(pos, target math32.Vector3) {
	cm.Pos = pos
	cm.LookAt(target, cm.UpDir)
}

// ViewVector is the vector from the target to the camera position.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Distance is the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// lerp returns the camera interpolated between a and b by t in [0, 1].
func lerp(a, b Camera, t float32) Camera {
	mix := func(x, y math32.Vector3) math32.Vector3 {
		return x.Add(y.Sub(x).MulScalar(t))
	}
	return Camera{
		Pos:    mix(a.Pos, b.Pos),
		Target: mix(a.Target, b.Target),
		UpDir:  mix(a.UpDir, b.UpDir),
		FOV:    math32.Lerp(a.FOV, b.FOV, t),
	}
}
