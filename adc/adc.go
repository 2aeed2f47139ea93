// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package adc binds bit-bashed SPI ADCs to the cd4067 converter interface.
//
// The multiplexer common output is wired to one input of a Microchip
// MCP3004/3008/3204/3208, which is clocked over GPIO by the
// warthog618/gpio/spi/mcp3w0c driver.
package adc

import (
	"time"

	"github.com/warthog618/cd4067"
	"github.com/warthog618/gpio/spi/mcp3w0c"
)

// MCP3w0c is a Converter backed by one channel of an MCP3xxx family device.
//
// The GPIO transfer is clocked synchronously, so the conversion is complete
// by the time Start returns and PollForConversion never waits.
type MCP3w0c struct {
	adc  *mcp3w0c.MCP3w0c
	ch   int
	val  uint16
	done bool
}

// NewMCP3008 binds channel ch of a bit-bashed MCP3008.
func NewMCP3008(tclk time.Duration, sclk, ssz, mosi, miso, ch int) *MCP3w0c {
	return &MCP3w0c{adc: mcp3w0c.NewMCP3008(tclk, sclk, ssz, mosi, miso), ch: ch}
}

// NewMCP3208 binds channel ch of a bit-bashed MCP3208.
func NewMCP3208(tclk time.Duration, sclk, ssz, mosi, miso, ch int) *MCP3w0c {
	return &MCP3w0c{adc: mcp3w0c.NewMCP3208(tclk, sclk, ssz, mosi, miso), ch: ch}
}

// Start clocks a single conversion out of the ADC.
func (c *MCP3w0c) Start() {
	c.val = c.adc.Read(c.ch)
	c.done = true
}

// PollForConversion reports whether a conversion has completed.
// It returns ErrTimeout if no conversion has been started.
func (c *MCP3w0c) PollForConversion(time.Duration) error {
	if !c.done {
		return cd4067.ErrTimeout
	}
	return nil
}

// Value returns the raw sample from the last conversion.
func (c *MCP3w0c) Value() uint16 {
	return c.val
}

// Stop ends the conversion cycle.
func (c *MCP3w0c) Stop() {
	c.done = false
}

// Close disables the pins used to drive the ADC.
func (c *MCP3w0c) Close() {
	c.adc.Close()
}
