// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warthog618/cd4067"
)

func init() {
	sweepCmd.Flags().IntVarP(&sweepOpts.Count, "count", "n", 14,
		"number of channels to read, starting from channel 0")
	rootCmd.AddCommand(sweepCmd)
}

var (
	sweepCmd = &cobra.Command{
		Use:     "sweep",
		Short:   "Read channels 0 through count-1 in order",
		RunE:    sweep,
		Example: "  muxio sweep -n 14",
	}
	sweepOpts = struct {
		Count int
	}{}
)

func sweep(cmd *cobra.Command, args []string) error {
	if sweepOpts.Count <= 0 || sweepOpts.Count > cd4067.Channels {
		return fmt.Errorf("count must be in the range 1-%d", cd4067.Channels)
	}
	mux, closer, err := openMux()
	if err != nil {
		return err
	}
	defer closer()
	buf := make([]uint16, sweepOpts.Count)
	if err := mux.ReadAll(buf); err != nil {
		return err
	}
	for ch, v := range buf {
		fmt.Printf("ch%02d=0x%03x\n", ch, v)
	}
	return nil
}
