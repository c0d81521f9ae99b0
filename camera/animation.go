// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"time"
)

// Animation is a camera framing request that moves the camera
// from one pose to another over time. It is advanced by [Controls.Step]
// and is replaced by any later framing request on the same [Controls].
type Animation struct {

	// From is the camera at the start of the animation.
	From Camera

	// To is the camera at the end of the animation.
	To Camera

	// Duration is the total duration of the animation.
	Duration time.Duration

	// Delta is the amount of time that passed in the last step.
	Delta time.Duration

	ctl       *Controls
	elapsed   time.Duration
	done      bool
	cancelled bool
}

// Cancel stops the animation, leaving the camera where it is.
// It does nothing if the animation is already done or cancelled.
func (an *Animation) Cancel() {
	an.ctl.mu.Lock()
	defer an.ctl.mu.Unlock()
	if an.done || an.cancelled {
		return
	}
	if an.ctl.active == an {
		an.ctl.cancelActive()
	} else {
		an.cancelled = true
	}
}

// Done returns whether the animation reached its end.
func (an *Animation) Done() bool {
	an.ctl.mu.Lock()
	defer an.ctl.mu.Unlock()
	return an.done
}

// Cancelled returns whether the animation was cancelled,
// either directly or by a later framing request.
func (an *Animation) Cancelled() bool {
	an.ctl.mu.Lock()
	defer an.ctl.mu.Unlock()
	return an.cancelled
}

// Progress returns the fraction of the animation completed, in [0, 1].
func (an *Animation) Progress() float32 {
	an.ctl.mu.Lock()
	defer an.ctl.mu.Unlock()
	return an.progress()
}

func (an *Animation) progress() float32 {
	if an.Duration <= 0 {
		return 1
	}
	return min(float32(an.elapsed)/float32(an.Duration), 1)
}
