// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/warthog618/cd4067"
	"github.com/warthog618/cd4067/adc"
	"github.com/warthog618/cd4067/rpi"
	"github.com/warthog618/gpio"
)

// This example reads the 14 sensor channels of a CD4067 wired to an MCP3208.
// The select lines S0-S3 are driven by GPIO 17, 18, 27 and 22, the enable
// line by GPIO 23, and the MCP3208 is clocked on GPIO 6, 5, 19 and 13.
// All pins other than the ADC data out are outputs, so do not run this
// example on a board where those pins serve other purposes.
func main() {
	err := gpio.Open()
	if err != nil {
		panic(err)
	}
	defer gpio.Close()
	port := rpi.New(gpio.GPIO17, gpio.GPIO18, gpio.GPIO27, gpio.GPIO22, gpio.GPIO23)
	defer port.Close()
	conv := adc.NewMCP3208(2500*time.Nanosecond,
		gpio.GPIO6, gpio.GPIO5, gpio.GPIO19, gpio.GPIO13, 0)
	defer conv.Close()
	mux, err := cd4067.New(cd4067.Config{
		Select: [4]cd4067.Line{
			{Port: port, Pin: gpio.GPIO17},
			{Port: port, Pin: gpio.GPIO18},
			{Port: port, Pin: gpio.GPIO27},
			{Port: port, Pin: gpio.GPIO22},
		},
		Enable:    cd4067.Line{Port: port, Pin: gpio.GPIO23},
		Converter: conv,
	})
	if err != nil {
		panic(err)
	}
	defer mux.Disable()
	buf := make([]uint16, 14)
	if err := mux.ReadAll(buf); err != nil {
		panic(err)
	}
	for ch, v := range buf {
		fmt.Printf("ch%02d=0x%03x\n", ch, v)
	}
}
