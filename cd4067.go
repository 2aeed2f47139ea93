// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//
//
// Package cd4067 provides a driver for the CD4067 16-channel analog
// multiplexer.
//
// The CD4067 routes one of 16 analog inputs onto a common output, so a
// single ADC channel can read up to 16 sensor lines.  The driver owns the
// four binary select lines (S0-S3), the active low enable line, and one
// converter channel wired to the common output, all supplied through the
// Config at construction.
//
// Example of use:
//
// 	mux, err := cd4067.New(cd4067.Config{
// 		Select:    [4]cd4067.Line{{port, 17}, {port, 18}, {port, 27}, {port, 22}},
// 		Enable:    cd4067.Line{port, 23},
// 		Converter: conv,
// 	})
// 	if err != nil {
// 		panic(err)
// 	}
// 	v, err := mux.Read(5)
//
// Every channel change is followed by a settling wait before the signal is
// sampled, as the analog switch and any downstream conditioning network need
// time to slew to the new channel's voltage.
//
// The driver is synchronous and is not safe for concurrent use.  All access
// to one CD4067 must be serialised by the caller, and the bound lines and
// converter are assumed to be exclusively owned by the driver.
package cd4067

import (
	"errors"
	"time"
)

// Channels is the number of inputs the multiplexer can route to the common
// output.
const Channels = 16

// Default values applied by New.
const (
	// DefaultSettlingTime is the wait applied after each channel change.
	DefaultSettlingTime = 10 * time.Microsecond

	// DefaultConversionTimeout bounds the wait for conversion completion.
	// Generous, given conversions typically complete within microseconds.
	DefaultConversionTimeout = 100 * time.Millisecond
)

var (
	// ErrInvalidConfig indicates the Config is missing a line port or the
	// converter.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange indicates a buffer larger than the channel count.
	ErrOutOfRange = errors.New("out of range")

	// ErrTimeout indicates the converter did not complete a conversion
	// within the conversion timeout.
	ErrTimeout = errors.New("conversion timeout")
)

// Level represents the high (true) or low (false) level driven onto an
// output line.
type Level bool

// Level of a line, High / Low.
const (
	Low  Level = false
	High Level = true
)

// PortWriter writes levels to digital output pins.
// Implementations wrap a GPIO bank, a port expander, or a test double.
type PortWriter interface {
	WritePin(pin int, level Level)
}

// Line identifies one digital output - a pin on a port.
type Line struct {
	Port PortWriter
	Pin  int
}

// Converter is a single-shot analog to digital converter channel.
// The converter is assumed to be wired to the multiplexer common output and
// configured (resolution, reference, sample time) before being handed to the
// driver.
type Converter interface {
	// Start triggers a single conversion.
	Start()
	// PollForConversion blocks until the conversion completes, or until
	// the timeout expires, in which case it returns an error.
	PollForConversion(timeout time.Duration) error
	// Value returns the raw sample from the last completed conversion.
	Value() uint16
	// Stop ends the conversion cycle.
	Stop()
}

// Config describes the wiring of a CD4067.
// All five line bindings and the converter must be populated.
type Config struct {
	// Select lines S0 (least significant bit) through S3.
	Select [4]Line

	// Enable is the active low enable line (EN).
	Enable Line

	// Converter is the ADC channel wired to the common output.
	Converter Converter

	// Settle overrides the busy-wait used for post-select settling.
	// Mainly for substituting a recorder or no-op in tests.
	Settle func(time.Duration)
}

// CD4067 drives a CD4067 multiplexer through four select lines and an
// enable line, and reads the selected channel through the bound converter.
type CD4067 struct {
	cfg      Config
	settle   func(time.Duration)
	settling time.Duration
	timeout  time.Duration
	current  int
	enabled  bool
}

// New creates a CD4067.
//
// The select lines are driven low and the enable line high, so the
// multiplexer starts disabled with channel 0 selected.
func New(cfg Config) (*CD4067, error) {
	if cfg.Converter == nil || cfg.Enable.Port == nil {
		return nil, ErrInvalidConfig
	}
	for _, l := range cfg.Select {
		if l.Port == nil {
			return nil, ErrInvalidConfig
		}
	}
	mux := &CD4067{
		cfg:      cfg,
		settle:   cfg.Settle,
		settling: DefaultSettlingTime,
		timeout:  DefaultConversionTimeout,
	}
	if mux.settle == nil {
		mux.settle = busyWait
	}
	for _, l := range cfg.Select {
		l.Port.WritePin(l.Pin, Low)
	}
	cfg.Enable.Port.WritePin(cfg.Enable.Pin, High)
	return mux, nil
}

// SetSettlingTime sets the wait applied after each channel change.
// The duration is caller-trusted and unvalidated.
func (mux *CD4067) SetSettlingTime(t time.Duration) {
	mux.settling = t
}

// SetConversionTimeout sets the bound on the wait for conversion
// completion.
func (mux *CD4067) SetConversionTimeout(t time.Duration) {
	mux.timeout = t
}

// Enable connects the common output to the selected channel (EN low).
func (mux *CD4067) Enable() {
	mux.cfg.Enable.Port.WritePin(mux.cfg.Enable.Pin, Low)
	mux.enabled = true
}

// Disable disconnects the common output from all channels (EN high).
// The selected channel is retained.
func (mux *CD4067) Disable() {
	mux.cfg.Enable.Port.WritePin(mux.cfg.Enable.Pin, High)
	mux.enabled = false
}

// Select drives the select lines to route channel ch to the common output,
// then waits the settling time.
//
// Channels outside [0,Channels) are ignored - the lines and selected
// channel are left unchanged.
func (mux *CD4067) Select(ch int) {
	if ch < 0 || ch >= Channels {
		return
	}
	for i, l := range mux.cfg.Select {
		level := Low
		if ch>>uint(i)&0x01 == 0x01 {
			level = High
		}
		l.Port.WritePin(l.Pin, level)
	}
	mux.current = ch
	// mux settling
	mux.settle(mux.settling)
}

// Read returns the value of a single channel read through the converter.
//
// Enables the multiplexer if it is disabled, and leaves it enabled.
// A conversion that does not complete within the conversion timeout
// returns an error, and the converter is stopped.
func (mux *CD4067) Read(ch int) (uint16, error) {
	if !mux.enabled {
		mux.Enable()
	}
	mux.Select(ch)
	conv := mux.cfg.Converter
	conv.Start()
	if err := conv.PollForConversion(mux.timeout); err != nil {
		conv.Stop()
		return 0, err
	}
	v := conv.Value()
	conv.Stop()
	return v, nil
}

// ReadAll reads channels 0 through len(buf)-1 in ascending order, storing
// the sample from channel i at buf[i].
//
// A nil buffer, or one longer than the channel count, returns ErrOutOfRange
// before any line or converter activity.  A read error aborts the sweep,
// leaving the earlier entries populated.
func (mux *CD4067) ReadAll(buf []uint16) error {
	if buf == nil || len(buf) > Channels {
		return ErrOutOfRange
	}
	if !mux.enabled {
		mux.Enable()
	}
	for i := range buf {
		v, err := mux.Read(i)
		if err != nil {
			return err
		}
		buf[i] = v
	}
	return nil
}

// CurrentChannel returns the channel last driven onto the select lines.
func (mux *CD4067) CurrentChannel() int {
	return mux.current
}

// Enabled returns whether the common output is connected to the selected
// channel.
func (mux *CD4067) Enabled() bool {
	return mux.enabled
}

// busyWait spins until the duration has elapsed.
// Sub-millisecond sleeps are at the mercy of the scheduler, so the default
// settling wait spins on the system clock rather than yielding.
func busyWait(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
