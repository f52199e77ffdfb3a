// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// A small rig for timing the expensive paths: power set enumeration,
// transitive closure fixed points and discrete logarithms.
package main

import (
	"fmt"
	"log"
	"time"

	flag "github.com/juju/gnuflag"
	"github.com/pkg/profile"

	"github.com/muratcankilic96/topos/congruence"
	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/types"
	"github.com/muratcankilic96/topos/util/verbose"
)

func main() {
	cpuProf := flag.Bool("cpuprof", false, "write a cpu profile")
	memProf := flag.Bool("memprof", false, "write a memory profile")
	domainSize := flag.Int("domain", 24, "domain cardinality for the closure benchmark")
	powerSize := flag.Int("power", 16, "set cardinality for the power set benchmark")
	dlogBase := flag.Int64("dlogbase", 104729, "prime modulus for the discrete log benchmark")
	verbose.RegisterVerboseFlags(flag.CommandLine)
	flag.Parse(true)

	if *cpuProf {
		fmt.Println("cpu profiling enabled.")
		defer profile.Start(profile.CPUProfile).Stop()
	}
	if *memProf {
		fmt.Println("mem profiling enabled.")
		defer profile.Start(profile.MemProfile).Stop()
	}

	benchPowerSet(*powerSize)
	benchTransitiveClosure(*domainSize)
	benchDlog(*dlogBase)
}

func benchPowerSet(n int) {
	members := make([]types.Value, n)
	for i := range members {
		members[i] = types.Integer(i)
	}
	s := types.NewSet(members...)

	start := time.Now()
	p := s.PowerSet()
	log.Printf("power set of %d members: %d subsets in %s", n, p.Len(), time.Since(start))
}

func benchTransitiveClosure(n int) {
	members := make([]types.Value, n)
	pairs := make([]*types.Tuple, 0, n)
	for i := range members {
		members[i] = types.Integer(i)
	}
	// A single n-cycle: the closure must grow to the full n² relation.
	for i := 0; i < n; i++ {
		pairs = append(pairs, types.NewPair(types.Integer(i), types.Integer((i+1)%n)))
	}
	domain := types.NewSet(members...)
	r := types.NewRelation(domain, domain, pairs...)

	start := time.Now()
	closed := r.TransitiveClosure()
	log.Printf("transitive closure over %d members: %d pairs in %s", n, closed.Len(), time.Since(start))
}

func benchDlog(base int64) {
	ic, err := congruence.New(base)
	d.PanicIfError(err)
	roots := ic.PrimitiveRoots()
	root, ok := types.Int64Of(roots.Any())
	d.PanicIfFalse(ok)
	verbose.Log("using primitive root %d of %d candidates", root, roots.Len())

	start := time.Now()
	count := 0
	for a := int64(2); a < base && count < 1000; a += base / 1000 {
		_, err := ic.Index(a, root)
		d.PanicIfError(err)
		count++
	}
	log.Printf("%d discrete logs mod %d in %s", count, base, time.Since(start))
}
