// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rpi drives the multiplexer control lines using Raspberry Pi GPIO
// pins.
//
// gpio.Open must be called before creating a Port, and the pins are assumed
// to be exclusively owned by the multiplexer.
package rpi

import (
	"github.com/warthog618/cd4067"
	"github.com/warthog618/gpio"
)

// Port is a PortWriter over a set of BCM GPIO pins.
type Port struct {
	pins map[int]*gpio.Pin
}

// New creates a Port driving the given BCM pins.
// The pins are switched to outputs and held low until written.
func New(pins ...int) *Port {
	p := &Port{pins: make(map[int]*gpio.Pin)}
	for _, n := range pins {
		pin := gpio.NewPin(n)
		pin.Low()
		pin.Output()
		p.pins[n] = pin
	}
	return p
}

// WritePin sets the level of the pin.
// Pins not claimed by New are ignored.
func (p *Port) WritePin(pin int, level cd4067.Level) {
	if pp := p.pins[pin]; pp != nil {
		pp.Write(gpio.Level(level))
	}
}

// Close returns the claimed pins to inputs.
func (p *Port) Close() {
	for _, pin := range p.pins {
		pin.Input()
	}
}
