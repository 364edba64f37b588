// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"errors"

	"github.com/golang/glog"
)

// ErrInvalidArgument reports a bad argument passed to a constructor.
// Validation happens eagerly at construction time; inference methods assume
// validated parameters and only check the observation sequence itself.
var ErrInvalidArgument = errors.New("invalid argument")

// Fatal logs the error and exits if err is not nil.
func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}
