// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"context"
	"sync"
	"time"

	"cogentcore.org/civil/geom"
	"cogentcore.org/core/math32"
)

// Controls owns a [Camera] and moves it to frame bounding volumes.
// At most one [Animation] is active at a time: a new framing request
// cancels the one in flight, so the last request wins and nothing is queued.
// Controls are safe to step from a render goroutine while framing
// requests come from the event goroutine.
type Controls struct {

	// MinDistance is the smallest distance from the camera to a framed
	// target, used for very small volumes.
	MinDistance float32

	// Padding scales the framed radius to leave a margin around the volume.
	Padding float32

	// Duration is the duration of framing animations.
	Duration time.Duration

	// OnFrame, if set, is called with every framing request.
	OnFrame func(sp geom.Sphere, animate bool)

	mu     sync.Mutex
	camera Camera
	active *Animation
}

// NewControls returns new [Controls] for a camera with default settings.
func NewControls() *Controls {
	ctl := &Controls{}
	ctl.Defaults()
	return ctl
}

// Defaults sets the default control parameters and camera.
func (ctl *Controls) Defaults() {
	ctl.MinDistance = 0.5
	ctl.Padding = 1.1
	ctl.Duration = 400 * time.Millisecond
	ctl.camera.Defaults()
}

// Camera returns a copy of the current camera.
func (ctl *Controls) Camera() Camera {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.camera
}

// SetCamera sets the camera, cancelling any active animation.
func (ctl *Controls) SetCamera(cm Camera) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.cancelActive()
	ctl.camera = cm
}

// SetLookAt moves the camera to the given position looking at
// the given target, cancelling any active animation.
func (ctl *Controls) SetLookAt(pos, target math32.Vector3) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.cancelActive()
	ctl.camera.SetLookAt(pos, target)
}

// FitToSphere frames the given sphere, keeping the current view direction.
// If animate is false the camera moves immediately and nil is returned.
// Otherwise a new [Animation] is started and returned; the caller does not
// need to wait for it or observe it.
func (ctl *Controls) FitToSphere(sp geom.Sphere, animate bool) *Animation {
	ctl.mu.Lock()
	ctl.cancelActive()
	to := ctl.framing(sp)
	var an *Animation
	if !animate || ctl.Duration <= 0 {
		ctl.camera = to
	} else {
		an = &Animation{From: ctl.camera, To: to, Duration: ctl.Duration, ctl: ctl}
		ctl.active = an
	}
	ctl.mu.Unlock()
	if ctl.OnFrame != nil {
		ctl.OnFrame(sp, animate)
	}
	return an
}

// FitToBox frames the sphere enclosing the given box.
// It does nothing and returns nil for an empty box.
func (ctl *Controls) FitToBox(b math32.Box3, animate bool) *Animation {
	sp, ok := geom.SphereFromBox(b)
	if !ok {
		return nil
	}
	return ctl.FitToSphere(sp, animate)
}

// framing returns the camera that frames the given sphere. Must be called
// with the mutex held.
func (ctl *Controls) framing(sp geom.Sphere) Camera {
	cm := ctl.camera
	dir := cm.ViewVector()
	if dir.Length() == 0 {
		dir = math32.Vec3(0, 0, 1)
	}
	dir = dir.Normal()
	half := math32.DegToRad(cm.FOV * 0.5)
	dist := sp.Radius * ctl.Padding
	if s := math32.Sin(half); s > 0 {
		dist /= s
	}
	dist = math32.Max(dist, ctl.MinDistance)
	cm.Target = sp.Center
	cm.Pos = sp.Center.Add(dir.MulScalar(dist))
	return cm
}

// Active returns the active animation, or nil.
func (ctl *Controls) Active() *Animation {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.active
}

// Animating returns whether an animation is active.
func (ctl *Controls) Animating() bool {
	return ctl.Active() != nil
}

// Step advances the active animation by the given time,
// returning whether an animation is still active afterward.
func (ctl *Controls) Step(delta time.Duration) bool {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	an := ctl.active
	if an == nil {
		return false
	}
	an.Delta = delta
	an.elapsed += delta
	t := an.progress()
	if t >= 1 {
		ctl.camera = an.To
		an.done = true
		ctl.active = nil
		return false
	}
	ctl.camera = lerp(an.From, an.To, smoothstep(t))
	return true
}

// Finish completes the active animation immediately.
func (ctl *Controls) Finish() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.active == nil {
		return
	}
	ctl.camera = ctl.active.To
	ctl.active.elapsed = ctl.active.Duration
	ctl.active.done = true
	ctl.active = nil
}

// Run steps animations at the given tick interval until the context is done,
// acting as the render loop for controls that are not driven by a window.
func (ctl *Controls) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ctl.Step(now.Sub(last))
			last = now
		}
	}
}

func (ctl *Controls) cancelActive() {
	if ctl.active != nil {
		ctl.active.cancelled = true
		ctl.active = nil
	}
}

// smoothstep eases t in [0, 1] in and out.
func smoothstep(t float32) float32 {
	t = math32.Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
