// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/watertap-org/watertap-renrtl/prop"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cteProp returns a constant property provider with value v
func cteProp(v float64) prop.Scalar {
	s, err := prop.New("cte")
	if err != nil {
		chk.Panic("cannot allocate 'cte' provider: %v", err)
	}
	if err = s.Init(utl.Params{&utl.P{N: "c", V: v}}); err != nil {
		chk.Panic("cannot initialise 'cte' provider: %v", err)
	}
	return s
}

// epsrWater returns the reciprocal-temperature permittivity correlation of
// liquid water
func epsrWater() prop.Scalar {
	s, err := prop.New("invT")
	if err != nil {
		chk.Panic("cannot allocate 'invT' provider: %v", err)
	}
	err = s.Init(utl.Params{
		&utl.P{N: "a", V: 78.54003},
		&utl.P{N: "b", V: 31989.38},
	})
	if err != nil {
		chk.Panic("cannot initialise 'invT' provider: %v", err)
	}
	return s
}

// naclReg builds the NaCl-in-water registry with the given solvent<=>pair
// interaction parameters
func naclReg(tauME, tauEM float64) *Registry {
	reg := NewRegistry(&Species{Name: "H2O", Mw: 18.01528e-3})
	reg.AddIon(&Species{Name: "Na+", Charge: 1, Mw: 22.990e-3, R: 1.02, Vq: -6.7, H: 1.51, Nsites: 4})
	reg.AddIon(&Species{Name: "Cl-", Charge: -1, Mw: 35.453e-3, R: 1.81, Vq: 23.3, H: 0.50, Nsites: 4})
	reg.AddElectrolyte(&Electrolyte{Name: "NaCl", Cation: "Na+", Anion: "Cl-", NuC: 1, NuA: 1, Kh: 3.60})
	reg.Tau.Set("H2O", "NaCl", tauME)
	reg.Tau.Set("NaCl", "H2O", tauEM)
	reg.RelPerm = epsrWater()
	reg.DensMol = cteProp(1000.0 / 18e-3)
	return reg
}

// seawaterReg builds the NaCl + Na2SO4 registry of the multi-electrolyte model
func seawaterReg() *Registry {
	reg := NewRegistry(&Species{Name: "H2O", Mw: 18.01528e-3})
	reg.AddIon(&Species{Name: "Na+", Charge: 1, Mw: 22.990e-3, R: 1.02, Vq: -7.6, H: 1.51})
	reg.AddIon(&Species{Name: "Cl-", Charge: -1, Mw: 35.453e-3, R: 1.81, Vq: 24.2, H: 0.50})
	reg.AddIon(&Species{Name: "SO4--", Charge: -2, Mw: 96.064e-3, R: 2.40, Vq: 26.8, H: -0.31})
	reg.AddElectrolyte(&Electrolyte{Name: "NaCl", Cation: "Na+", Anion: "Cl-", NuC: 1, NuA: 1, Kh: 3.600})
	reg.AddElectrolyte(&Electrolyte{Name: "Na2SO4", Cation: "Na+", Anion: "SO4--", NuC: 2, NuA: 1, Kh: 1.022})
	reg.Tau.Set("H2O", "NaCl", 7.951)
	reg.Tau.Set("NaCl", "H2O", -3.984)
	reg.Tau.Set("H2O", "Na2SO4", 7.578)
	reg.Tau.Set("Na2SO4", "H2O", -3.532)
	reg.Tau.Set("NaCl", "Na2SO4", 0)
	reg.Tau.Set("Na2SO4", "NaCl", 0)
	reg.RelPerm = epsrWater()
	reg.DensMol = cteProp(1000.0 / 18e-3)
	return reg
}
