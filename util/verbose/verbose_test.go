// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package verbose

import (
	"bytes"
	"log"
	"os"
	"testing"

	flag "github.com/juju/gnuflag"
	"github.com/stretchr/testify/assert"
)

func TestRegisterVerboseFlags(t *testing.T) {
	assert := assert.New(t)
	defer SetVerbose(false)

	flags := flag.NewFlagSet("verbose-long", flag.ContinueOnError)
	RegisterVerboseFlags(flags)
	assert.NoError(flags.Parse(true, []string{"--verbose"}))
	assert.True(Verbose())

	SetVerbose(false)
	flags = flag.NewFlagSet("verbose-short", flag.ContinueOnError)
	RegisterVerboseFlags(flags)
	assert.NoError(flags.Parse(true, []string{"-v"}))
	assert.True(Verbose())
}

func TestLogGatedOnVerbose(t *testing.T) {
	assert := assert.New(t)
	defer SetVerbose(false)
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	SetVerbose(false)
	Log("sieved %d candidates", 30)
	assert.Equal("", buf.String())

	SetVerbose(true)
	Log("sieved %d candidates", 30)
	assert.Contains(buf.String(), "sieved 30 candidates")

	buf.Reset()
	Log("no args")
	assert.Contains(buf.String(), "no args")
}
