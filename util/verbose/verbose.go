// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package verbose carries the -v flag and verbosity-gated logging for the
// command line tools.
package verbose

import (
	"log"

	flag "github.com/juju/gnuflag"
)

var (
	verbose bool
)

// RegisterVerboseFlags registers -v|--verbose flags for general usage
func RegisterVerboseFlags(flags *flag.FlagSet) {
	flags.BoolVar(&verbose, "verbose", false, "show more")
	flags.BoolVar(&verbose, "v", false, "")
}

// Verbose returns True if the verbose flag was set
func Verbose() bool {
	return verbose
}

// SetVerbose sets the verbose flag directly, for callers that parse flags
// through another library.
func SetVerbose(v bool) {
	verbose = v
}

// Log calls log.Printf(format, args...) iff Verbose() returns true.
func Log(format string, args ...interface{}) {
	if Verbose() {
		if len(args) > 0 {
			log.Printf(format+"\n", args...)
		} else {
			log.Println(format)
		}
	}
}
