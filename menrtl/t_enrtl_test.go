// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
)

// classicReg builds the NaCl registry of the symmetric model with the
// constant permittivity and the molar density of pure water
func classicReg() *Registry {
	reg := NewRegistry(&Species{Name: "H2O", Mw: 18.015e-3})
	reg.AddIon(&Species{Name: "Na+", Charge: 1, Mw: 22.990e-3, R: 1.02, Vq: -6.7, H: 1.51})
	reg.AddIon(&Species{Name: "Cl-", Charge: -1, Mw: 35.453e-3, R: 1.81, Vq: 23.3, H: 0.50})
	reg.AddElectrolyte(&Electrolyte{Name: "NaCl", Cation: "Na+", Anion: "Cl-", NuC: 1, NuA: 1})
	reg.Tau.Set("H2O", "NaCl", 8.885)
	reg.Tau.Set("NaCl", "H2O", -4.549)
	reg.RelPerm = cteProp(78.54)
	reg.DensMol = cteProp(1.0 / 18.015e-6)
	return reg
}

func Test_enrtl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrtl01. symmetric model at the evaporator brine")

	reg := classicReg()
	mdl, err := New("enrtl")
	if err != nil {
		tst.Errorf("cannot allocate model: %v", err)
		return
	}
	if err = mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}

	sta := NewState(333.15, 30000)
	sta.Set("H2O", 108.38460785335238)
	sta.Set("NaCl", 5.988741166606778)
	res := NewResult(reg)
	if err = mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	io.Pforan("γ H2O = %v\n", math.Exp(res.LnGamma["H2O"]))

	chk.Float64(tst, "ln γ H2O", 1e-8, res.LnGamma["H2O"], -0.016105382281182451)
	chk.Float64(tst, "γ H2O", 1e-8, math.Exp(res.LnGamma["H2O"]), 0.9840236159377079)
	chk.Float64(tst, "ionic strength", 1e-10, res.IonicStr, 0.04975604160183657)
	chk.Float64(tst, "osmotic pressure", 1.0, res.PressureOsm, 18593105.594824195)
}

func Test_enrtl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrtl02. Gibbs-Duhem consistency")

	reg := classicReg()
	mdl, _ := New("enrtl")
	if err := mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}

	// derivatives of ln γ along the electrolyte flow must satisfy
	// Σ nᵢ dln(γᵢ) = 0 at constant temperature and pressure
	Fs, Fe := 108.38460785335238, 5.988741166606778
	eval := func(species string) func(fe float64) float64 {
		return func(fe float64) float64 {
			sta := NewState(333.15, 30000)
			sta.Set("H2O", Fs)
			sta.Set("NaCl", fe)
			res := NewResult(reg)
			if err := mdl.Gamma(res, sta); err != nil {
				tst.Errorf("Gamma failed: %v", err)
				return 0
			}
			return res.LnGamma[species]
		}
	}
	set := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	gd := Fs * fd.Derivative(eval("H2O"), Fe, set)
	gd += Fe * fd.Derivative(eval("Na+"), Fe, set)
	gd += Fe * fd.Derivative(eval("Cl-"), Fe, set)
	gd /= Fs + 2*Fe
	io.Pforan("Gibbs-Duhem residual = %v\n", gd)
	chk.Float64(tst, "Gibbs-Duhem residual", 1e-8, gd, 0)
}

func Test_enrtl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrtl03. evaporator brine case")

	// feed: 9.65 kg/s water and 0.35 kg/s dissolved salts; the evaporator
	// leaves 108.38 mol/s of water in the brine. the salt molar mass is the
	// seawater total-dissolved-solids value
	mwTDS := 31.4038e-3
	mwNaCl := 58.443e-3
	saltKg := 0.35
	Fs := 108.38460785335238
	Fe := saltKg / mwNaCl
	waterKg := Fs * 18.015e-3

	reg := classicReg()
	mdl, _ := New("enrtl")
	if err := mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}
	sta := NewState(333.15, 30000)
	sta.Set("H2O", Fs)
	sta.Set("NaCl", Fe)
	res := NewResult(reg)
	if err := mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	molalTDS := (saltKg / mwTDS) / waterKg
	io.Pforan("molality = %v  γ H2O = %v\n", molalTDS, math.Exp(res.LnGamma["H2O"]))

	chk.Float64(tst, "brine TDS molality", 1e-2, molalTDS, 5.708)
	chk.Float64(tst, "brine γ H2O", 1e-3, math.Exp(res.LnGamma["H2O"]), 0.9834)

	// modified Raoult law at the brine
	xw := Fs / (Fs + 2*Fe)
	peq := VaporPressure(res, "H2O", xw, 30000)
	chk.Float64(tst, "vapour pressure", 1e-6, peq, math.Exp(res.LnGamma["H2O"])*xw*30000)
	if peq >= 30000 {
		tst.Errorf("boiling point elevation must reduce the equilibrium pressure")
	}
}

func Test_enrtl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrtl04. example parameters")

	for _, name := range []string{"renrtl", "renrtl-multi", "enrtl"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v", name, err)
			return
		}
		prms := mdl.GetPrms(true)
		if len(prms) < 1 {
			tst.Errorf("model %q must provide example parameters", name)
			return
		}
		var buf string
		for _, p := range prms {
			buf += io.Sf("%s=%g ", p.N, p.V)
		}
		io.Pfpink("%-14s: %s\n", name, buf)
	}

	// classic ρ is adjustable
	reg := classicReg()
	mdl, _ := New("enrtl")
	if err := mdl.Init(reg, utl.Params{&utl.P{N: "rho", V: 10}}); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}
	sta := NewState(333.15, 30000)
	sta.Set("H2O", 108.38460785335238)
	sta.Set("NaCl", 5.988741166606778)
	res := NewResult(reg)
	if err := mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	if res.LnGamma["H2O"] == -0.016105382281182451 {
		tst.Errorf("changing ρ must change the long-range contribution")
	}
}
