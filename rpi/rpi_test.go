// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpi

import (
	"testing"
)

func TestUninitialisedPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("New did not panic")
		}
	}()
	// claiming pins without gpio.Open panics in the gpio library
	p := New(17)
	_ = p
}
