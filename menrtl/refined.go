// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Refined implements the refined eNRTL model for one electrolyte in one
// solvent [2], with either a constant or a stepwise [3] hydration correction.
// The free (unhydrated) solvent, the cation, and the anion form the true
// species set; the long-range contribution is the volume-corrected
// Pitzer-Debye-Hückel term and the short-range contribution is the
// two-liquid local composition term with the unsymmetric reference state
type Refined struct {

	// system
	reg      *Registry
	elec     *Electrolyte
	cat, an  *Species
	beta     float64 // closest-approach exponent for the charge pattern
	tauME    float64 // solvent => electrolyte energy parameter
	tauEM    float64 // electrolyte => solvent energy parameter

	// parameters
	Stepwise bool    // use the stepwise hydration equilibrium
	MaxMolal float64 // validity bound of the fitted parameters [mol/kg]
	Itmax    int     // maximum hydration iterations
	Tol      float64 // hydration convergence tolerance
}

// add model to factory
func init() {
	allocators["renrtl"] = func() Model { return new(Refined) }
}

// Init initialises this structure
func (o *Refined) Init(reg *Registry, prms utl.Params) (err error) {
	if err = reg.Validate(); err != nil {
		return
	}
	if len(reg.Electrolytes) != 1 {
		return cfgErr("refined model handles one electrolyte; %d are registered. use 'renrtl-multi' instead", len(reg.Electrolytes))
	}
	o.reg = reg
	o.elec = reg.Electrolytes[0]
	o.cat = reg.Cation(o.elec)
	o.an = reg.Anion(o.elec)
	if o.beta, err = reg.Beta(o.elec); err != nil {
		return
	}
	if o.tauME, o.tauEM, err = reg.TauSolvent(o.elec); err != nil {
		return
	}

	// parameters
	o.MaxMolal = 6.0
	o.Itmax = 100
	o.Tol = 1e-12
	for _, p := range prms {
		switch p.N {
		case "stepwise":
			o.Stepwise = p.V > 0
		case "maxmolal":
			o.MaxMolal = p.V
		case "itmax":
			o.Itmax = int(p.V)
		case "tol":
			o.Tol = p.V
		}
	}
	if o.Stepwise {
		if o.elec.Kh <= 0 {
			return cfgErr("stepwise hydration of %q needs a positive equilibrium constant", o.elec.Name)
		}
		if o.cat.Nsites <= 0 {
			return cfgErr("stepwise hydration of %q needs the number of hydration sites of cation %q", o.elec.Name, o.cat.Name)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o *Refined) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "stepwise", V: 0},
		&utl.P{N: "maxmolal", V: 6},
		&utl.P{N: "itmax", V: 100},
		&utl.P{N: "tol", V: 1e-12},
	}
}

// refinedCore holds the intermediate quantities of one evaluation at a fixed
// total hydration number
type refinedCore struct {
	nM, nC, nA float64 // true species amounts [mol/s]
	nSum       float64
	Xm, Xc, Xa float64 // charge-scaled true mole fractions
	I          float64 // volume-based ionic strength [mol/m³]
	Vt         float64 // total liquid volume [m³/s]
	pdhM       float64 // long-range contributions
	pdhC, pdhA float64
	lcM        float64 // solvent local composition contribution
	lcC, lcA   float64 // ionic local composition, unsymmetric reference
}

// eval computes all contributions at the given total hydration number H
// [mol water / mol electrolyte] and hydrated-shell average havg
func (o *Refined) eval(sta *State, H, havg float64, c *refinedCore) error {

	// system data
	reg := o.reg
	T := sta.T
	Fs := sta.Solvent(reg)
	Fe := sta.Flow[o.elec.Name]
	zc, za := o.cat.Zabs(), o.an.Zabs()
	nuC, nuA := o.elec.NuC, o.elec.NuA
	nu := o.elec.Nu()

	// true species amounts and charge-scaled fractions
	c.nC = nuC * Fe
	c.nA = nuA * Fe
	c.nM = Fs - H*Fe
	if c.nM <= 0 {
		return domErr("hydration H=%g consumed all free solvent (n=%g)", H, c.nM)
	}
	c.nSum = c.nM + c.nC + c.nA
	c.Xm = c.nM / c.nSum
	c.Xc = zc * c.nC / c.nSum
	c.Xa = za * c.nA / c.nSum

	// partial molar volumes with electrostriction
	VoC, VoA := ionVolume(o.cat.R), ionVolume(o.an.R)
	VqC, VqA := o.cat.Vq*cm3toM3, o.an.Vq*cm3toM3
	XpC := nuC * Fe / (Fs + nu*Fe)
	XpA := nuA * Fe / (Fs + nu*Fe)
	sXp := XpC + XpA
	dens := reg.DensMol.Value(T) * reg.Solvent.Mw
	c.Vt = Fs*reg.Solvent.Mw/dens +
		nuC*Fe*(VqC+(VoC-VqC)*sXp) + nuA*Fe*(VqA+(VoA-VqA)*sXp)
	mix := XpC*(VoC-VqC) + XpA*(VoA-VqA)
	vC := VqC + (VoC-VqC)*sXp + mix*(1-sXp)
	vA := VqA + (VoA-VqA)*sXp + mix*(1-sXp)
	vM := reg.Solvent.Mw/dens - mix

	// long-range: volume-corrected Pitzer-Debye-Hückel
	c.I = 0.5 / c.Vt * (c.nC*zc*zc + c.nA*za*za)
	epsr := reg.RelPerm.Value(T)
	ar := closestApproach(havg, o.beta, o.cat.R, o.an.R)
	bf := bornFactor(epsr, T)
	b := ar * bf
	A := bf * bf * bf / (16 * math.Pi * Avogadro)
	sq := math.Sqrt(c.I)
	f := pdhVolumeF(b * sq)
	c.pdhM = vM * 2 * A / (b * b * b) * f
	c.pdhC = -A*zc*zc*sq/(1+b*sq) + vC*2*A/(b*b*b)*f
	c.pdhA = -A*za*za*sq/(1+b*sq) + vA*2*A/(b*b*b)*f

	// short-range: two-liquid local composition. with one cation and one
	// anion the quadruple-index sums of [2] collapse to closed scalars
	Gcm := math.Exp(-alphaNRTL * o.tauEM)
	Gmc := math.Exp(-alphaNRTL * o.tauME)
	den := c.Xm + (c.Xc+c.Xa)*Gcm
	S := (c.Xc + c.Xa) * Gcm * o.tauEM / den
	t1 := (c.Xm / den) * Gcm * (o.tauEM - S)
	den2 := c.Xm*Gmc + c.Xa
	S2 := c.Xm * Gmc * o.tauME / den2
	den3 := c.Xm*Gmc + c.Xc
	S3 := c.Xm * Gmc * o.tauME / den3
	c.lcM = S - (c.Xm/den)*S + (c.Xc*Gmc/den2)*(o.tauME-S2) + (c.Xa*Gmc/den3)*(o.tauME-S3)
	inf := o.tauME + Gcm*o.tauEM // infinite-dilution reference, both ions
	c.lcC = zc * (t1 + S2 - c.Xa*S3/den3 - inf)
	c.lcA = za * (t1 + S3 - c.Xc*S2/den2 - inf)
	return nil
}

// solveHydration finds the total hydration number of the stepwise equilibrium
// by fixed-point iteration and leaves c evaluated at the solution
func (o *Refined) solveHydration(sta *State, c *refinedCore) (H float64, err error) {
	nuC, nuA := o.elec.NuC, o.elec.NuA
	K := o.elec.Kh

	// the closest approach distance stays at the configured hydration
	// numbers; only the bulk solvent follows the iterated H
	havg := (o.cat.H + o.an.H) / 2
	H = nuC*o.cat.H + nuA*o.an.H
	for it := 0; it < o.Itmax; it++ {
		if err = o.eval(sta, H, havg, c); err != nil {
			return
		}
		t := c.Xm * math.Exp(c.lcM)
		Hn := nuC*(o.cat.Hmin+(o.cat.Nsites-o.cat.Hmin)*K*t/(1+K*t)) + nuA*o.an.Hmin
		if math.Abs(Hn-H) < o.Tol {
			H = Hn
			err = o.eval(sta, H, havg, c)
			return
		}
		H = Hn
	}
	return H, domErr("stepwise hydration did not converge after %d iterations", o.Itmax)
}

// Gamma computes activity coefficients at state
func (o *Refined) Gamma(res *Result, sta *State) (err error) {

	// check state and validity range
	if err = sta.Check(o.reg); err != nil {
		return
	}
	reg := o.reg
	Fs := sta.Solvent(reg)
	Fe := sta.Flow[o.elec.Name]
	molal := Fe / (Fs * reg.Solvent.Mw)
	if molal > o.MaxMolal {
		return &OutOfRangeError{
			Msg:   io.Sf("molality of %q is beyond the fitted range of the refined model", o.elec.Name),
			Value: molal, Limit: o.MaxMolal,
		}
	}

	// hydration and contributions
	var H float64
	var c refinedCore
	if o.Stepwise {
		if H, err = o.solveHydration(sta, &c); err != nil {
			return
		}
	} else {
		H = o.elec.NuC*o.cat.H + o.elec.NuA*o.an.H
		if err = o.eval(sta, H, (o.cat.H+o.an.H)/2, &c); err != nil {
			return
		}
	}

	// activity coefficients of the true species
	lgM := c.pdhM + c.lcM
	lgC := c.pdhC + c.lcC
	lgA := c.pdhA + c.lcA
	res.LnGamma[reg.Solvent.Name] = lgM
	res.LnGamma[o.cat.Name] = lgC
	res.LnGamma[o.an.Name] = lgA

	// mean ionic activity coefficient of the apparent electrolyte
	nuC, nuA := o.elec.NuC, o.elec.NuA
	nu := o.elec.Nu()
	lgAppr := (nuC*lgC + nuA*lgA) / nu
	res.LnGammaAppr[o.elec.Name] = lgAppr

	// molal-scale correction
	t := c.Xm * math.Exp(c.lcM)
	var lgMolal float64
	if o.Stepwise {
		K := o.elec.Kh
		lgMolal = lgAppr + (1.0/nu)*(nu*math.Log(Fs/c.nSum)-
			(nuC*o.cat.Hmin+nuA*o.an.Hmin)*(math.Log(c.Xm)+c.lcM)+
			nuC*(o.cat.Nsites-o.cat.Hmin)*math.Log((1+K)/(1+K*t)))
	} else {
		lgMolal = lgAppr - (H/nu)*math.Log(t) - math.Log(1+(nu-H)/(Fs/(nuC*Fe)))
	}
	res.LnGammaMolal[o.elec.Name] = lgMolal

	// auxiliary results
	res.Hydration = H
	res.IonicStr = c.I
	res.Molality[o.elec.Name] = molal
	res.PressureOsm = -GasConst * sta.T * (math.Log(c.Xm) + lgM) * reg.DensMol.Value(sta.T)
	return nil
}
