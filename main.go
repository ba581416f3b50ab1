// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/watertap-org/watertap-renrtl/inp"
	"github.com/watertap-org/watertap-renrtl/menrtl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sys", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nrenrtl -- electrolyte-NRTL activity coefficients\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read system
	sys, err := inp.ReadSys(fnamepath)
	if err != nil {
		chk.Panic("cannot read system file:\n%v", err)
	}
	if verbose {
		io.Pf("%s: %s (model %q)\n\n", sys.Key, sys.Desc, sys.Model)
	}

	// evaluate all feeds
	for _, feed := range sys.Feeds {
		res := menrtl.NewResult(sys.Reg)
		if err := sys.Mdl.Gamma(res, feed.State()); err != nil {
			chk.Panic("evaluation of feed %q failed:\n%v", feed.Desc, err)
		}
		io.Pf("feed %q: T = %g K  P = %g Pa\n", feed.Desc, feed.T, feed.P)
		io.Pf("  %-8s %14s %14s\n", "species", "ln γ", "γ")
		io.Pf("  %-8s %14.8f %14.8f\n", sys.Solvent.Name,
			res.LnGamma[sys.Solvent.Name], math.Exp(res.LnGamma[sys.Solvent.Name]))
		for _, sp := range sys.Ions {
			io.Pf("  %-8s %14.8f %14.8f\n", sp.Name, res.LnGamma[sp.Name], math.Exp(res.LnGamma[sp.Name]))
		}
		for _, e := range sys.Electrolytes {
			io.Pf("  %-8s molality = %.6f  γ± = %.8f  γ±(molal) = %.8f\n",
				e.Name, res.Molality[e.Name],
				math.Exp(res.LnGammaAppr[e.Name]), math.Exp(res.LnGammaMolal[e.Name]))
		}
		io.Pf("  hydration = %.6f  I = %.6f  Π = %.6g Pa\n\n",
			res.Hydration, res.IonicStr, res.PressureOsm)
	}
}
