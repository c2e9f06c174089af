// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestTimeFps(t *testing.T) {
	c := qt.New(t)
	clk := &clock{now: time.Unix(1000, 0)}
	tm := NewTime(TimeConfiguration{StatsInterval: time.Second})
	tm.now = clk.Now

	c.Assert(tm.Elapsed(), qt.Equals, time.Duration(0))
	tm.Frame()
	for i := 0; i < 61; i++ {
		clk.advance(time.Second / 60)
		tm.Frame()
	}
	c.Assert(tm.Frames(), qt.Equals, int64(62))
	c.Assert(tm.Fps() > 60 && tm.Fps() < 62, qt.IsTrue)
	c.Assert(tm.Elapsed() >= time.Second, qt.IsTrue)
}

func TestTimeStatsDisabled(t *testing.T) {
	c := qt.New(t)
	clk := &clock{now: time.Unix(1000, 0)}
	tm := NewTime(TimeConfiguration{})
	tm.now = clk.Now

	for i := 0; i < 10; i++ {
		tm.Frame()
		clk.advance(time.Second)
	}
	c.Assert(tm.Frames(), qt.Equals, int64(10))
	c.Assert(tm.Fps(), qt.Equals, float64(0))
}
