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
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:     "select <channel>",
	Short:   "Drive the select lines to route a channel without reading it",
	Args:    cobra.ExactArgs(1),
	RunE:    selectChannel,
	Example: "  muxio select 7",
}

func selectChannel(cmd *cobra.Command, args []string) error {
	ch, err := parseChannel(args[0])
	if err != nil {
		return err
	}
	mux, closer, err := openMux()
	if err != nil {
		return err
	}
	defer closer()
	mux.Select(ch)
	fmt.Printf("selected ch%d\n", mux.CurrentChannel())
	return nil
}
