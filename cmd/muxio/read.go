// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:     "read <channel1>...",
	Short:   "Read the level of a channel or channels",
	Args:    cobra.MinimumNArgs(1),
	RunE:    read,
	Example: "  muxio read 0 5 13",
}

func read(cmd *cobra.Command, args []string) error {
	cc := []int(nil)
	for _, arg := range args {
		ch, err := parseChannel(arg)
		if err != nil {
			return err
		}
		cc = append(cc, ch)
	}
	mux, closer, err := openMux()
	if err != nil {
		return err
	}
	defer closer()
	for _, ch := range cc {
		v, err := mux.Read(ch)
		if err != nil {
			logErr(cmd, err)
			continue
		}
		fmt.Printf("ch%d=0x%03x\n", ch, v)
	}
	return nil
}
