// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Connect the mux common output to the selected channel",
	RunE:  enable,
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disconnect the mux common output from all channels",
	RunE:  disable,
}

func enable(cmd *cobra.Command, args []string) error {
	mux, closer, err := openMux()
	if err != nil {
		return err
	}
	defer closer()
	mux.Enable()
	return nil
}

func disable(cmd *cobra.Command, args []string) error {
	mux, closer, err := openMux()
	if err != nil {
		return err
	}
	defer closer()
	mux.Disable()
	return nil
}
