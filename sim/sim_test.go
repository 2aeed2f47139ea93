// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/cd4067"
	"github.com/warthog618/cd4067/sim"
)

func TestPort(t *testing.T) {
	p := sim.NewPort()
	// unwritten pins read low
	assert.Equal(t, cd4067.Low, p.Level(4))
	assert.Equal(t, 0, p.Writes())
	p.WritePin(4, cd4067.High)
	assert.Equal(t, cd4067.High, p.Level(4))
	p.WritePin(4, cd4067.Low)
	assert.Equal(t, cd4067.Low, p.Level(4))
	assert.Equal(t, 2, p.Writes())
}

func TestADC(t *testing.T) {
	a := sim.NewADC()
	a.SimulateValue(0x123)
	a.Start()
	assert.Nil(t, a.PollForConversion(time.Millisecond))
	assert.Equal(t, uint16(0x123), a.Value())
	a.Stop()
	starts, polls, reads, stops := a.Calls()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, polls)
	assert.Equal(t, 1, reads)
	assert.Equal(t, 1, stops)
	assert.Equal(t, []time.Duration{time.Millisecond}, a.Timeouts())

	a.Sample = func() uint16 { return 0x456 }
	a.Start()
	assert.Equal(t, uint16(0x456), a.Value())
}
