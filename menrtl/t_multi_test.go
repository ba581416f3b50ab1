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
)

func Test_multi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multi01. NaCl + Na2SO4 brine")

	reg := seawaterReg()
	mdl, err := New("renrtl-multi")
	if err != nil {
		tst.Errorf("cannot allocate model: %v", err)
		return
	}
	if err = mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}

	// 4 mol NaCl + 0.5 mol Na2SO4 per kg water at 333.15 K
	sta := NewState(333.15, 30000)
	sta.Set("H2O", 1.0/18.01528e-3)
	sta.Set("NaCl", 4.0)
	sta.Set("Na2SO4", 0.5)
	res := NewResult(reg)
	if err = mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	io.Pforan("ln γ = %v\n", res.LnGamma)
	io.Pforan("I = %v  H = %v\n", res.IonicStr, res.Hydration)

	chk.Float64(tst, "ln γ H2O", 1e-8, res.LnGamma["H2O"], 0.00016033190320493065)
	chk.Float64(tst, "ln γ Na+", 1e-8, res.LnGamma["Na+"], -0.5797560190457468)
	chk.Float64(tst, "ln γ Cl-", 1e-8, res.LnGamma["Cl-"], -0.3633847474229217)
	chk.Float64(tst, "ln γ SO4--", 1e-8, res.LnGamma["SO4--"], -3.901492237197937)
	chk.Float64(tst, "γ H2O", 1e-8, math.Exp(res.LnGamma["H2O"]), 1.0001603447570515)
	chk.Float64(tst, "ln γ± NaCl", 1e-8, res.LnGammaAppr["NaCl"], -0.4835910094356023)
	chk.Float64(tst, "ln γ± Na2SO4", 1e-8, res.LnGammaAppr["Na2SO4"], -0.8817320388777642)
	chk.Float64(tst, "ln γ± molal NaCl", 1e-8, res.LnGammaMolal["NaCl"], -0.2692656177088874)
	chk.Float64(tst, "ln γ± molal Na2SO4", 1e-8, res.LnGammaMolal["Na2SO4"], -0.609653208094906)
	chk.Float64(tst, "γ± molal NaCl", 1e-8, math.Exp(res.LnGammaMolal["NaCl"]), 0.763940312621196)
	chk.Float64(tst, "γ± molal Na2SO4", 1e-8, math.Exp(res.LnGammaMolal["Na2SO4"]), 0.5435393314342423)
	chk.Float64(tst, "hydration", 1e-10, res.Hydration, 9.395)
	chk.Float64(tst, "ionic strength", 1e-5, res.IonicStr, 5036.41255576964)
	chk.Float64(tst, "molality NaCl", 1e-12, res.Molality["NaCl"], 4.0)
	chk.Float64(tst, "osmotic pressure", 1.0, res.PressureOsm, 28801483.17221758)
}

func Test_multi02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multi02. dilute limit and pure solvent")

	reg := seawaterReg()
	mdl, _ := New("renrtl-multi")
	if err := mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}

	sta := NewState(298.15, 101325)
	sta.Set("H2O", 1.0/18.01528e-3)
	sta.Set("NaCl", 2e-6)
	sta.Set("Na2SO4", 5e-7)
	res := NewResult(reg)
	if err := mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	chk.Float64(tst, "ln γ H2O -> 0", 1e-9, res.LnGamma["H2O"], 0)
	chk.Float64(tst, "ln γ Na+", 1e-8, res.LnGamma["Na+"], -0.0021891443167873716)
	chk.Float64(tst, "ln γ Cl-", 1e-8, res.LnGamma["Cl-"], -0.0021889236425488576)
	chk.Float64(tst, "ln γ SO4--", 1e-8, res.LnGamma["SO4--"], -0.008757028575613397)

	// pure solvent
	sta.Set("NaCl", 0)
	sta.Set("Na2SO4", 0)
	if err := mdl.Gamma(res, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	for _, name := range []string{"H2O", "Na+", "Cl-", "SO4--"} {
		chk.Float64(tst, "pure solvent ln γ "+name, 1e-15, res.LnGamma[name], 0)
	}
}

func Test_multi03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multi03. determinism")

	reg := seawaterReg()
	mdl, _ := New("renrtl-multi")
	if err := mdl.Init(reg, nil); err != nil {
		tst.Errorf("cannot initialise model: %v", err)
		return
	}
	sta := NewState(333.15, 30000)
	sta.Set("H2O", 1.0/18.01528e-3)
	sta.Set("NaCl", 4.0)
	sta.Set("Na2SO4", 0.5)
	resA, resB := NewResult(reg), NewResult(reg)
	if err := mdl.Gamma(resA, sta); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	if err := mdl.Gamma(resB, sta.Clone()); err != nil {
		tst.Errorf("Gamma failed: %v", err)
		return
	}
	for _, name := range []string{"H2O", "Na+", "Cl-", "SO4--"} {
		if resA.LnGamma[name] != resB.LnGamma[name] {
			tst.Errorf("evaluation of %q is not deterministic", name)
			return
		}
	}
	for _, name := range []string{"NaCl", "Na2SO4"} {
		if resA.LnGammaMolal[name] != resB.LnGammaMolal[name] {
			tst.Errorf("molal coefficient of %q is not deterministic", name)
			return
		}
	}
}

func Test_multi04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multi04. errors")

	// stepwise hydration is not available
	reg := seawaterReg()
	mdl, _ := New("renrtl-multi")
	err := mdl.Init(reg, utl.Params{&utl.P{N: "stepwise", V: 1}})
	if err == nil {
		tst.Errorf("stepwise hydration must fail in the multi model")
		return
	}
	if _, ok := err.(*ConfigurationError); !ok {
		tst.Errorf("wrong error type: %v", err)
		return
	}

	// missing cross interaction parameter of the cation-sharing pair
	regX := seawaterReg()
	delete(regX.Tau, [2]string{"NaCl", "Na2SO4"})
	mdlX, _ := New("renrtl-multi")
	if err := mdlX.Init(regX, nil); err == nil {
		tst.Errorf("missing cross interaction parameter must fail")
		return
	} else if _, ok := err.(*ConfigurationError); !ok {
		tst.Errorf("wrong error type: %v", err)
		return
	}

	// the complete definition needs two solvent pairs per electrolyte plus
	// the ordered cross pairs of cation-sharing electrolytes
	if n := seawaterReg().NumTau(); n != 6 {
		tst.Errorf("wrong number of required interaction parameters: %d", n)
		return
	}

	// non-aqueous solvent
	regS := seawaterReg()
	regS.Solvent.Name = "MeOH"
	regS.Tau = TauTable{
		{"MeOH", "NaCl"}: 7.951, {"NaCl", "MeOH"}: -3.984,
		{"MeOH", "Na2SO4"}: 7.578, {"Na2SO4", "MeOH"}: -3.532,
		{"NaCl", "Na2SO4"}: 0, {"Na2SO4", "NaCl"}: 0,
	}
	mdlS, _ := New("renrtl-multi")
	if err := mdlS.Init(regS, nil); err == nil {
		tst.Errorf("non-aqueous solvent must fail in the multi model")
		return
	} else if _, ok := err.(*ConfigurationError); !ok {
		tst.Errorf("wrong error type: %v", err)
		return
	}

	// ion that belongs to no electrolyte
	regI := seawaterReg()
	regI.AddIon(&Species{Name: "K+", Charge: 1, Mw: 39.098e-3, R: 1.38, Vq: 1, H: 1})
	mdlI, _ := New("renrtl-multi")
	if err := mdlI.Init(regI, nil); err == nil {
		tst.Errorf("orphan ion must fail")
		return
	} else if _, ok := err.(*ConfigurationError); !ok {
		tst.Errorf("wrong error type: %v", err)
		return
	}

	// the pair parameter mixing rules read every cation-anion combination;
	// NaCl + KBr leaves Na-Br and K-Cl unregistered and must be rejected
	regP := NewRegistry(&Species{Name: "H2O", Mw: 18.01528e-3})
	regP.AddIon(&Species{Name: "Na+", Charge: 1, Mw: 22.990e-3, R: 1.02, Vq: -7.6, H: 1.51})
	regP.AddIon(&Species{Name: "K+", Charge: 1, Mw: 39.098e-3, R: 1.38, Vq: 3.4, H: 0.60})
	regP.AddIon(&Species{Name: "Cl-", Charge: -1, Mw: 35.453e-3, R: 1.81, Vq: 24.2, H: 0.50})
	regP.AddIon(&Species{Name: "Br-", Charge: -1, Mw: 79.904e-3, R: 1.96, Vq: 30.2, H: 0.46})
	regP.AddElectrolyte(&Electrolyte{Name: "NaCl", Cation: "Na+", Anion: "Cl-", NuC: 1, NuA: 1, Kh: 3.600})
	regP.AddElectrolyte(&Electrolyte{Name: "KBr", Cation: "K+", Anion: "Br-", NuC: 1, NuA: 1, Kh: 2.500})
	regP.Tau.Set("H2O", "NaCl", 7.951)
	regP.Tau.Set("NaCl", "H2O", -3.984)
	regP.Tau.Set("H2O", "KBr", 7.894)
	regP.Tau.Set("KBr", "H2O", -4.005)
	regP.RelPerm = epsrWater()
	regP.DensMol = cteProp(1000.0 / 18e-3)
	mdlP, _ := New("renrtl-multi")
	if err := mdlP.Init(regP, nil); err == nil {
		tst.Errorf("unregistered cation-anion combination must fail")
		return
	} else if _, ok := err.(*ConfigurationError); !ok {
		tst.Errorf("wrong error type: %v", err)
	}
}
