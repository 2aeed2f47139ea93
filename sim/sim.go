// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sim provides in-memory implementations of the cd4067 line and
// converter interfaces, for testing users of the driver without hardware.
package sim

import (
	"time"

	"github.com/warthog618/cd4067"
)

// Port is a PortWriter that records the level driven onto each pin.
type Port struct {
	levels map[int]cd4067.Level
	writes int
}

// NewPort creates a Port.
func NewPort() *Port {
	return &Port{levels: map[int]cd4067.Level{}}
}

// WritePin records the level for the pin.
func (p *Port) WritePin(pin int, level cd4067.Level) {
	p.levels[pin] = level
	p.writes++
}

// Level returns the level last driven onto the pin.
// Pins never written are reported low.
func (p *Port) Level(pin int) cd4067.Level {
	return p.levels[pin]
}

// Writes returns the total number of pin writes.
func (p *Port) Writes() int {
	return p.writes
}

// ADC is a Converter that returns scripted samples.
//
// Each Start draws a sample from the Sample hook, if set, else the value
// last set by SimulateValue.
type ADC struct {
	// Sample, if not nil, is invoked on each Start to produce the sample.
	Sample func() uint16

	// PollErr, if not nil, is returned by PollForConversion.
	PollErr error

	value    uint16
	timeouts []time.Duration
	starts   int
	polls    int
	reads    int
	stops    int
}

// NewADC creates an ADC.
func NewADC() *ADC {
	return &ADC{}
}

// SimulateValue sets the sample returned by subsequent conversions.
func (a *ADC) SimulateValue(v uint16) {
	a.value = v
}

// Start triggers a simulated conversion.
func (a *ADC) Start() {
	a.starts++
	if a.Sample != nil {
		a.value = a.Sample()
	}
}

// PollForConversion records the timeout and returns PollErr.
func (a *ADC) PollForConversion(timeout time.Duration) error {
	a.polls++
	a.timeouts = append(a.timeouts, timeout)
	return a.PollErr
}

// Value returns the current simulated sample.
func (a *ADC) Value() uint16 {
	a.reads++
	return a.value
}

// Stop ends the simulated conversion.
func (a *ADC) Stop() {
	a.stops++
}

// Calls returns the number of Start, PollForConversion, Value and Stop
// calls made on the converter.
func (a *ADC) Calls() (starts, polls, reads, stops int) {
	return a.starts, a.polls, a.reads, a.stops
}

// Timeouts returns the timeout passed to each PollForConversion call.
func (a *ADC) Timeouts() []time.Duration {
	return a.timeouts
}
