// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/warthog618/cd4067"
	"github.com/warthog618/cd4067/adc"
	"github.com/warthog618/cd4067/rpi"
	"github.com/warthog618/config"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/json"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/gpio"
)

// This example sweeps the channels of a CD4067 wired to an MCP3208 and
// prints the sampled values. The default pin assignments are defined in
// loadConfig, but can be altered via configuration (env, flag or config
// file), e.g.
//
//	sweep --count=16 --settle=25us
//
// All pins other than the ADC data out are outputs, so do not run this
// example on a board where those pins serve other purposes.
func main() {
	cfg := loadConfig()
	err := gpio.Open()
	if err != nil {
		panic(err)
	}
	defer gpio.Close()
	ss := []int{
		int(cfg.GetUint("s0")),
		int(cfg.GetUint("s1")),
		int(cfg.GetUint("s2")),
		int(cfg.GetUint("s3")),
	}
	en := int(cfg.GetUint("en"))
	port := rpi.New(ss[0], ss[1], ss[2], ss[3], en)
	defer port.Close()
	conv := adc.NewMCP3208(
		cfg.GetDuration("tclk"),
		int(cfg.GetUint("clk")),
		int(cfg.GetUint("csz")),
		int(cfg.GetUint("mosi")),
		int(cfg.GetUint("miso")),
		int(cfg.GetUint("adc-channel")))
	defer conv.Close()
	mux, err := cd4067.New(cd4067.Config{
		Select: [4]cd4067.Line{
			{Port: port, Pin: ss[0]},
			{Port: port, Pin: ss[1]},
			{Port: port, Pin: ss[2]},
			{Port: port, Pin: ss[3]},
		},
		Enable:    cd4067.Line{Port: port, Pin: en},
		Converter: conv,
	})
	if err != nil {
		panic(err)
	}
	defer mux.Disable()
	mux.SetSettlingTime(cfg.GetDuration("settle"))
	buf := make([]uint16, cfg.GetUint("count"))
	if err := mux.ReadAll(buf); err != nil {
		panic(err)
	}
	for ch, v := range buf {
		fmt.Printf("ch%02d=0x%03x\n", ch, v)
	}
}

// Config defines the minimal configuration interface
type Config interface {
	GetDuration(k string) time.Duration
	GetUint(k string) uint64
}

func loadConfig() Config {
	defaultConfig := map[string]interface{}{
		"s0":          gpio.GPIO17,
		"s1":          gpio.GPIO18,
		"s2":          gpio.GPIO27,
		"s3":          gpio.GPIO22,
		"en":          gpio.GPIO23,
		"clk":         gpio.GPIO6,
		"csz":         gpio.GPIO5,
		"mosi":        gpio.GPIO19,
		"miso":        gpio.GPIO13,
		"adc-channel": 0,
		"tclk":        "2500ns",
		"settle":      "10us",
		"count":       14,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	shortFlags := map[byte]string{
		'c': "config-file",
	}
	fget, err := pflag.New(pflag.WithShortFlags(shortFlags))
	if err != nil {
		panic(err)
	}
	// environment next
	eget, err := env.New(env.WithEnvPrefix("CD4067_"))
	if err != nil {
		panic(err)
	}
	// highest priority sources first - flags override environment
	sources := config.NewStack(fget, eget)
	cfg := config.NewConfig(config.Decorate(sources, config.WithDefault(def)))

	// config file may be specified via flag or env, so check for it
	// and if present add it with lower priority than flag and env.
	configFile, err := cfg.GetString("config.file")
	if err == nil {
		// explicitly specified config file - must be there
		jget, err := json.New(json.FromFile(configFile))
		if err != nil {
			panic(err)
		}
		sources.Append(jget)
	} else {
		// implicit and optional default config file
		jget, err := json.New(json.FromFile("cd4067.json"))
		if err == nil {
			sources.Append(jget)
		} else {
			if _, ok := err.(*os.PathError); !ok {
				panic(err)
			}
		}
	}
	m := cfg.GetMust("", config.WithPanic())
	return m
}
