// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Classic implements the symmetric eNRTL model of Song and Chen [1] for one
// electrolyte in one solvent, without hydration corrections. The long-range
// term is the mole-fraction based Pitzer-Debye-Hückel expression with the
// fixed closest-approach parameter ρ and the short-range term is the
// two-liquid local composition expression
type Classic struct {

	// system
	reg     *Registry
	elec    *Electrolyte
	cat, an *Species
	tauME   float64 // solvent => electrolyte energy parameter
	tauEM   float64 // electrolyte => solvent energy parameter

	// parameters
	Rho      float64 // closest approach parameter
	MaxMolal float64 // validity bound; zero disables the check
}

// add model to factory
func init() {
	allocators["enrtl"] = func() Model { return new(Classic) }
}

// Init initialises this structure
func (o *Classic) Init(reg *Registry, prms utl.Params) (err error) {
	if err = reg.Validate(); err != nil {
		return
	}
	if len(reg.Electrolytes) != 1 {
		return cfgErr("classic model handles one electrolyte; %d are registered", len(reg.Electrolytes))
	}
	o.reg = reg
	o.elec = reg.Electrolytes[0]
	o.cat = reg.Cation(o.elec)
	o.an = reg.Anion(o.elec)
	if o.tauME, o.tauEM, err = reg.TauSolvent(o.elec); err != nil {
		return
	}
	o.Rho = 14.9
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "maxmolal":
			o.MaxMolal = p.V
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o *Classic) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "rho", V: 14.9},
		&utl.P{N: "maxmolal", V: 0},
	}
}

// aX returns the Debye-Hückel parameter on the mole fraction scale, built
// from the molar density of the solvent
func (o *Classic) aX(T float64) float64 {
	d := o.reg.DensMol.Value(T)
	epsr := o.reg.RelPerm.Value(T)
	q := ElemCharge * ElemCharge / (4 * math.Pi * epsr * Eps0 * Boltzmann * T)
	return (1.0 / 3.0) * math.Sqrt(2*math.Pi*Avogadro*d) * q * math.Sqrt(q)
}

// Gamma computes activity coefficients at state
func (o *Classic) Gamma(res *Result, sta *State) (err error) {

	// check state and validity range
	if err = sta.Check(o.reg); err != nil {
		return
	}
	reg := o.reg
	T := sta.T
	Fs := sta.Solvent(reg)
	Fe := sta.Flow[o.elec.Name]
	molal := Fe / (Fs * reg.Solvent.Mw)
	if o.MaxMolal > 0 && molal > o.MaxMolal {
		return &OutOfRangeError{
			Msg:   io.Sf("molality of %q is beyond the fitted range", o.elec.Name),
			Value: molal, Limit: o.MaxMolal,
		}
	}

	// true species mole fractions (complete dissociation, no hydration)
	zc, za := o.cat.Zabs(), o.an.Zabs()
	nC := o.elec.NuC * Fe
	nA := o.elec.NuA * Fe
	nSum := Fs + nC + nA
	xm := Fs / nSum
	xc := nC / nSum
	xa := nA / nSum

	// long-range Pitzer-Debye-Hückel, mole fraction scale
	Ix := 0.5 * (xc*zc*zc + xa*za*za)
	A := o.aX(T)
	sq := math.Sqrt(Ix)
	rho := o.Rho
	pdhM := 2 * A * Ix * sq / (1 + rho*sq)
	pdhIon := func(z float64) float64 {
		return -A * ((2*z*z/rho)*math.Log(1+rho*sq) + (z*z*sq-2*Ix*sq)/(1+rho*sq))
	}

	// short-range local composition with charge-scaled fractions
	Xm := xm
	Xc := zc * xc
	Xa := za * xa
	Gcm := math.Exp(-alphaNRTL * o.tauEM)
	Gmc := math.Exp(-alphaNRTL * o.tauME)
	den := Xm + (Xc+Xa)*Gcm
	S := (Xc + Xa) * Gcm * o.tauEM / den
	t1 := (Xm / den) * Gcm * (o.tauEM - S)
	den2 := Xm*Gmc + Xa
	S2 := Xm * Gmc * o.tauME / den2
	den3 := Xm*Gmc + Xc
	S3 := Xm * Gmc * o.tauME / den3
	lcM := S - (Xm/den)*S + (Xc*Gmc/den2)*(o.tauME-S2) + (Xa*Gmc/den3)*(o.tauME-S3)
	inf := o.tauME + Gcm*o.tauEM
	lcC := zc * (t1 + S2 - Xa*S3/den3 - inf)
	lcA := za * (t1 + S3 - Xc*S2/den2 - inf)

	// assemble
	lgM := pdhM + lcM
	lgC := pdhIon(zc) + lcC
	lgA := pdhIon(za) + lcA
	res.LnGamma[reg.Solvent.Name] = lgM
	res.LnGamma[o.cat.Name] = lgC
	res.LnGamma[o.an.Name] = lgA
	nu := o.elec.Nu()
	lgAppr := (o.elec.NuC*lgC + o.elec.NuA*lgA) / nu
	res.LnGammaAppr[o.elec.Name] = lgAppr
	res.LnGammaMolal[o.elec.Name] = lgAppr - math.Log(1+reg.Solvent.Mw*nu*molal)
	res.Hydration = 0
	res.IonicStr = Ix
	res.Molality[o.elec.Name] = molal
	res.PressureOsm = -GasConst * T * (math.Log(xm) + lgM) * reg.DensMol.Value(T)
	return nil
}
