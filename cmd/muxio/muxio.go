// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/cd4067"
	"github.com/warthog618/cd4067/adc"
	"github.com/warthog618/cd4067/rpi"
	"github.com/warthog618/gpio"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "muxio",
	Short: "muxio is a utility to read analog channels through a CD4067 multiplexer",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version: version,
}

var rootOpts = struct {
	S0      int
	S1      int
	S2      int
	S3      int
	En      int
	Sclk    int
	Ssz     int
	Mosi    int
	Miso    int
	Channel int
	Tclk    time.Duration
	Settle  time.Duration
	Timeout time.Duration
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&rootOpts.S0, "s0", gpio.GPIO17, "BCM pin driving select line S0")
	pf.IntVar(&rootOpts.S1, "s1", gpio.GPIO18, "BCM pin driving select line S1")
	pf.IntVar(&rootOpts.S2, "s2", gpio.GPIO27, "BCM pin driving select line S2")
	pf.IntVar(&rootOpts.S3, "s3", gpio.GPIO22, "BCM pin driving select line S3")
	pf.IntVar(&rootOpts.En, "en", gpio.GPIO23, "BCM pin driving the enable line")
	pf.IntVar(&rootOpts.Sclk, "clk", gpio.GPIO6, "BCM pin driving the ADC clock")
	pf.IntVar(&rootOpts.Ssz, "csz", gpio.GPIO5, "BCM pin driving the ADC chip select")
	pf.IntVar(&rootOpts.Mosi, "mosi", gpio.GPIO19, "BCM pin driving the ADC data in")
	pf.IntVar(&rootOpts.Miso, "miso", gpio.GPIO13, "BCM pin reading the ADC data out")
	pf.IntVar(&rootOpts.Channel, "adc-channel", 0, "ADC channel wired to the mux common output")
	pf.DurationVar(&rootOpts.Tclk, "tclk", 2500*time.Nanosecond, "ADC clock half-period")
	pf.DurationVar(&rootOpts.Settle, "settle", cd4067.DefaultSettlingTime, "post-select settling time")
	pf.DurationVar(&rootOpts.Timeout, "timeout", cd4067.DefaultConversionTimeout, "conversion timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func logErr(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "muxio %s: %s\n", cmd.Name(), err)
}

// openMux claims the GPIO pins and constructs the multiplexer.
// The returned closer releases the pins.
func openMux() (*cd4067.CD4067, func(), error) {
	if err := gpio.Open(); err != nil {
		return nil, nil, err
	}
	port := rpi.New(rootOpts.S0, rootOpts.S1, rootOpts.S2, rootOpts.S3, rootOpts.En)
	conv := adc.NewMCP3208(rootOpts.Tclk,
		rootOpts.Sclk, rootOpts.Ssz, rootOpts.Mosi, rootOpts.Miso,
		rootOpts.Channel)
	mux, err := cd4067.New(cd4067.Config{
		Select: [4]cd4067.Line{
			{Port: port, Pin: rootOpts.S0},
			{Port: port, Pin: rootOpts.S1},
			{Port: port, Pin: rootOpts.S2},
			{Port: port, Pin: rootOpts.S3},
		},
		Enable:    cd4067.Line{Port: port, Pin: rootOpts.En},
		Converter: conv,
	})
	if err != nil {
		gpio.Close()
		return nil, nil, err
	}
	mux.SetSettlingTime(rootOpts.Settle)
	mux.SetConversionTimeout(rootOpts.Timeout)
	// Unmapping leaves the pins in their current mode and level, so select
	// and enable survive the process.
	closer := func() {
		gpio.Close()
	}
	return mux, closer, nil
}

func parseChannel(arg string) (int, error) {
	ch, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || ch >= cd4067.Channels {
		return 0, fmt.Errorf("can't parse channel '%s'", arg)
	}
	return int(ch), nil
}
