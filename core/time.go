// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	return &Time{
		interval: cfg.StatsInterval,
		now:      time.Now,
	}
}

// Time counts presented frames and periodically reports the frame rate.
// It only measures, the frame rate itself is paced by the swap interval.
type Time struct {
	interval time.Duration
	now      func() time.Time

	started     time.Time
	windowStart time.Time
	windowCount int64
	frames      int64
	fps         float64
}

// Frame records one presented frame.
func (t *Time) Frame() {
	now := t.now()
	if t.started.IsZero() {
		t.started, t.windowStart = now, now
	}
	t.frames++
	t.windowCount++

	if t.interval <= 0 {
		return
	}
	if elapsed := now.Sub(t.windowStart); elapsed >= t.interval {
		t.fps = float64(t.windowCount) / elapsed.Seconds()
		t.windowStart, t.windowCount = now, 0
		log.WithField("fps", int(t.fps+0.5)).WithField("frames", t.frames).Debug("Frame statistics")
	}
}

// Fps gets the frame rate measured over the last full interval
func (t *Time) Fps() float64 {
	return t.fps
}

// Frames gets the number of frames recorded
func (t *Time) Frames() int64 {
	return t.frames
}

// Elapsed gets the time since the first recorded frame
func (t *Time) Elapsed() time.Duration {
	if t.started.IsZero() {
		return 0
	}
	return t.now().Sub(t.started)
}
