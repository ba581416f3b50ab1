// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// RefinedMulti implements the refined eNRTL model for aqueous mixtures of
// several electrolytes [2,3]. Interaction parameters of ion pairs are mixed
// into ionic two-index parameters with charge-fraction weights, and the
// quadruple-index local composition sums of [2] are evaluated over the full
// cation and anion sets. Hydration is the constant correction only
type RefinedMulti struct {

	// system
	reg   *Registry
	cats  []string            // cation names, registration order
	ans   []string            // anion names, registration order
	aq    []string            // solvent + cations + anions
	spmap map[string]*Species // name => species
	elecs map[[2]string]*Electrolyte

	// parameters
	MaxMolal float64 // validity bound of the fitted parameters [mol/kg]
}

// add model to factory
func init() {
	allocators["renrtl-multi"] = func() Model { return new(RefinedMulti) }
}

// Init initialises this structure
func (o *RefinedMulti) Init(reg *Registry, prms utl.Params) (err error) {
	if err = reg.Validate(); err != nil {
		return
	}
	if reg.Solvent.Name != "H2O" {
		return cfgErr("multi-electrolyte model supports the aqueous solvent only; got %q", reg.Solvent.Name)
	}
	o.reg = reg
	o.spmap = map[string]*Species{reg.Solvent.Name: reg.Solvent}
	o.aq = []string{reg.Solvent.Name}
	for _, sp := range reg.Cations {
		o.cats = append(o.cats, sp.Name)
		o.aq = append(o.aq, sp.Name)
		o.spmap[sp.Name] = sp
	}
	for _, sp := range reg.Anions {
		o.ans = append(o.ans, sp.Name)
		o.aq = append(o.aq, sp.Name)
		o.spmap[sp.Name] = sp
	}
	o.elecs = make(map[[2]string]*Electrolyte)
	for _, e := range reg.Electrolytes {
		o.elecs[[2]string{e.Cation, e.Anion}] = e
	}

	// the mixing rules read pair parameters for every cation-anion
	// combination, so each combination must be a registered electrolyte
	// with declared solvent parameters; none may default silently
	for _, cs := range reg.Cations {
		for _, as := range reg.Anions {
			if _, ok := o.elecs[[2]string{cs.Name, as.Name}]; !ok {
				return cfgErr("ion pair (%q,%q) is not a registered electrolyte; the multi-electrolyte model needs every cation-anion combination registered with its interaction parameters", cs.Name, as.Name)
			}
		}
	}

	// parameters
	o.MaxMolal = 6.0
	for _, p := range prms {
		switch p.N {
		case "stepwise":
			if p.V > 0 {
				return cfgErr("stepwise hydration is not available in the multi-electrolyte model")
			}
		case "maxmolal":
			o.MaxMolal = p.V
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o *RefinedMulti) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "maxmolal", V: 6},
	}
}

// pairName returns the apparent component name of the (cation,anion) pair.
// Init guarantees that every combination is a registered electrolyte
func (o *RefinedMulti) pairName(c, a string) string {
	return o.elecs[[2]string{c, a}].Name
}

// tauRule returns the interaction parameter of two apparent components,
// defaulting to zero
func (o *RefinedMulti) tauRule(i, j string) float64 {
	if v, ok := o.reg.Tau.Get(i, j); ok {
		return v
	}
	return 0
}

// gAppr returns the Boltzmann factor of two apparent components
func (o *RefinedMulti) gAppr(i, j string) float64 {
	if i == j {
		return 1
	}
	return math.Exp(-alphaNRTL * o.tauRule(i, j))
}

// four-index table access with the default values of [2]
type quad = [4]string

func get4(m map[quad]float64, def float64, i, j, k, l string) float64 {
	if v, ok := m[quad{i, j, k, l}]; ok {
		return v
	}
	return def
}

// multiCore holds the intermediate quantities of one evaluation
type multiCore struct {
	n    map[string]float64 // true species amounts, incl. free solvent
	X    map[string]float64 // charge-scaled true mole fractions
	Y    map[string]float64 // charge fractions within cations resp. anions
	H    float64            // total bound water [mol/s]
	nSum float64
	I    float64 // volume-based ionic strength [mol/m³]
	Vt   float64
	pdh  map[string]float64
	lc   map[string]float64 // local composition, unsymmetric reference for ions

	// two-index tables over true species
	G2, t2 map[[2]string]float64

	// four-index tables
	a4, t4, G4 map[quad]float64
}

func (o *RefinedMulti) a4g(c *multiCore, i, j, k, l string) float64 {
	return get4(c.a4, alphaNRTL, i, j, k, l)
}
func (o *RefinedMulti) t4g(c *multiCore, i, j, k, l string) float64 {
	return get4(c.t4, 1, i, j, k, l)
}
func (o *RefinedMulti) g4g(c *multiCore, i, j, k, l string) float64 {
	return get4(c.G4, 1, i, j, k, l)
}

// eval computes composition, long-range, and local composition contributions
func (o *RefinedMulti) eval(sta *State, c *multiCore) error {

	// system data
	reg := o.reg
	T := sta.T
	m := reg.Solvent.Name
	Fs := sta.Solvent(reg)
	flows := sta.Dissolve(reg)
	ions := append(append([]string{}, o.cats...), o.ans...)

	// true species amounts: the bound water is removed from the solvent
	c.n = make(map[string]float64)
	c.H = 0
	for _, i := range ions {
		c.n[i] = flows[i]
		c.H += o.spmap[i].H * flows[i]
	}
	c.n[m] = Fs - c.H
	if c.n[m] <= 0 {
		return domErr("hydration H=%g mol/s consumed all free solvent (n=%g)", c.H, c.n[m])
	}
	c.nSum = 0
	for _, i := range o.aq {
		c.nSum += c.n[i]
	}
	c.X = make(map[string]float64)
	for _, i := range o.aq {
		c.X[i] = o.zabs(i) * c.n[i] / c.nSum
	}
	c.Y = make(map[string]float64)
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += c.X[i]
	}
	for _, i := range o.ans {
		sumXa += c.X[i]
	}
	for _, i := range o.cats {
		c.Y[i] = c.X[i] / sumXc
	}
	for _, i := range o.ans {
		c.Y[i] = c.X[i] / sumXa
	}

	// partial molar volumes with electrostriction
	Vo := make(map[string]float64)
	Vq := make(map[string]float64)
	for _, i := range ions {
		Vo[i] = ionVolume(o.spmap[i].R)
		Vq[i] = o.spmap[i].Vq * cm3toM3
	}
	fsum := 0.0
	for _, i := range ions {
		fsum += flows[i]
	}
	Xp := make(map[string]float64)
	sXp := 0.0
	for _, i := range ions {
		Xp[i] = flows[i] / (Fs + fsum)
		sXp += Xp[i]
	}
	dens := reg.DensMol.Value(T) * reg.Solvent.Mw
	c.Vt = Fs * reg.Solvent.Mw / dens
	for _, i := range ions {
		c.Vt += c.n[i] * (Vq[i] + (Vo[i]-Vq[i])*sXp)
	}
	mix := 0.0
	for _, i := range ions {
		mix += Xp[i] * (Vo[i] - Vq[i])
	}
	v := make(map[string]float64)
	for _, j := range ions {
		v[j] = Vq[j] + (Vo[j]-Vq[j])*sXp + mix*(1-sXp)
	}
	v[m] = reg.Solvent.Mw/dens - mix*sXp

	// ionic strength per the mixing rule of [2]
	den := 0.0
	for _, i := range ions {
		den += c.n[i] * o.zabs(i)
	}
	num := 0.0
	for _, cc := range o.cats {
		for _, aa := range o.ans {
			num += c.n[cc] * o.zabs(cc) * c.n[aa] * o.zabs(aa) * (o.zabs(cc) + o.zabs(aa))
		}
	}
	c.I = num / den / c.Vt

	// long-range with the amount-averaged closest approach distance
	epsr := reg.RelPerm.Value(T)
	arNum, arDen := 0.0, 0.0
	for _, e := range reg.Electrolytes {
		cs, as := reg.Cation(e), reg.Anion(e)
		beta, err := reg.Beta(e)
		if err != nil {
			return err
		}
		ar := closestApproach((cs.H+as.H)/2, beta, cs.R, as.R)
		arNum += c.n[e.Anion] * c.n[e.Cation] * ar
	}
	for _, aa := range o.ans {
		for _, cc := range o.cats {
			arDen += c.n[aa] * c.n[cc]
		}
	}
	arAvg := arNum / arDen
	bf := bornFactor(epsr, T)
	A := bf * bf * bf / (16 * math.Pi * Avogadro)
	ba := bf * arAvg
	sq := math.Sqrt(c.I)
	f := pdhVolumeF(ba * sq)
	c.pdh = map[string]float64{m: v[m] * 2 * A / (ba * ba * ba) * f}
	for _, j := range ions {
		z := o.zabs(j)
		c.pdh[j] = -A*z*z*sq/(1+ba*sq) + v[j]*2*A/(ba*ba*ba)*f
	}

	// local composition tables and sums
	o.buildTables(c)
	c.lc = make(map[string]float64)
	c.lc[m] = o.lcSolvent(c, m)
	for _, cc := range o.cats {
		c.lc[cc] = o.lcCation(c, cc) - o.infCation(c, cc)
	}
	for _, aa := range o.ans {
		c.lc[aa] = o.lcAnion(c, aa) - o.infAnion(c, aa)
	}
	return nil
}

func (o *RefinedMulti) zabs(name string) float64 {
	if name == o.reg.Solvent.Name {
		return 1
	}
	return o.spmap[name].Zabs()
}

// buildTables assembles the two-index and quadruple-index interaction tables
// over the true species from the apparent pair parameters
func (o *RefinedMulti) buildTables(c *multiCore) {
	m := o.reg.Solvent.Name
	pr := o.pairName

	// two-index: charge-fraction mixing of the pair parameters
	c.G2 = make(map[[2]string]float64)
	c.t2 = make(map[[2]string]float64)
	al2 := make(map[[2]string]float64)
	set := func(i, j string, al, g float64) {
		al2[[2]string{i, j}] = al
		c.G2[[2]string{i, j}] = g
	}
	set(m, m, alphaNRTL, o.gAppr(m, m))
	c.t2[[2]string{m, m}] = o.tauRule(m, m)
	for _, cc := range o.cats {
		gcm, gmc := 0.0, 0.0
		for _, k := range o.ans {
			gcm += c.Y[k] * o.gAppr(pr(cc, k), m)
			gmc += c.Y[k] * o.gAppr(m, pr(cc, k))
		}
		set(cc, m, alphaNRTL, gcm)
		set(m, cc, alphaNRTL, gmc)
	}
	for _, aa := range o.ans {
		gam, gma := 0.0, 0.0
		for _, k := range o.cats {
			gam += c.Y[k] * o.gAppr(pr(k, aa), m)
			gma += c.Y[k] * o.gAppr(m, pr(k, aa))
		}
		set(aa, m, alphaNRTL, gam)
		set(m, aa, alphaNRTL, gma)
	}
	for _, cc := range o.cats {
		for _, aa := range o.ans {
			if len(o.cats) > 1 {
				g := 0.0
				for _, k := range o.cats {
					g += c.Y[k] * o.gAppr(pr(cc, aa), pr(k, aa))
				}
				set(cc, aa, alphaNRTL, g)
			} else {
				set(cc, aa, alphaNRTL, 1)
			}
			if len(o.ans) > 1 {
				g := 0.0
				for _, k := range o.ans {
					g += c.Y[k] * o.gAppr(pr(cc, aa), pr(cc, k))
				}
				set(aa, cc, alphaNRTL, g)
			} else {
				set(aa, cc, alphaNRTL, 1)
			}
		}
	}
	for key, g := range c.G2 {
		if _, done := c.t2[key]; !done {
			c.t2[key] = -math.Log(g) / al2[key]
		}
	}

	// quadruple-index
	c.a4 = make(map[quad]float64)
	c.t4 = make(map[quad]float64)
	c.G4 = make(map[quad]float64)
	for _, cc := range o.cats {
		for _, aa := range o.ans {
			c.a4[quad{cc, aa, m, m}] = alphaNRTL
			c.a4[quad{aa, cc, m, m}] = alphaNRTL
			c.a4[quad{m, aa, cc, aa}] = alphaNRTL
			c.a4[quad{m, cc, aa, cc}] = alphaNRTL
			for _, ap := range o.ans {
				if aa != ap {
					c.a4[quad{aa, cc, ap, cc}] = alphaNRTL
				}
			}
		}
	}
	for _, s := range o.aq {
		c.t4[quad{s, m, m, m}] = 0
	}
	c.t4[quad{m, m, m, m}] = 0
	for _, aa := range o.ans {
		for _, cc := range o.cats {
			c.t4[quad{aa, cc, aa, cc}] = 0
			c.t4[quad{cc, aa, cc, aa}] = 0
			c.t4[quad{aa, aa, cc, aa}] = 0
			c.t4[quad{cc, cc, aa, cc}] = 0
			for _, ap := range o.ans {
				if aa != ap {
					c.t4[quad{aa, ap, cc, ap}] = 0
					c.t4[quad{ap, aa, cc, aa}] = 0
					c.t4[quad{aa, cc, ap, cc}] = o.tauRule(pr(cc, aa), pr(cc, ap))
				}
			}
		}
	}
	for _, cc := range o.cats {
		sumGY := 0.0
		for _, ap := range o.ans {
			sumGY += o.gAppr(pr(cc, ap), m) * c.Y[ap]
		}
		for _, aa := range o.ans {
			sumGYc := 0.0
			for _, cp := range o.cats {
				sumGYc += o.gAppr(pr(cp, aa), m) * c.Y[cp]
			}
			tme, tem := o.tauRule(m, pr(cc, aa)), o.tauRule(pr(cc, aa), m)
			c.t4[quad{m, cc, aa, cc}] = -math.Log(sumGY)/alphaNRTL - tem + tme
			c.t4[quad{m, aa, cc, aa}] = -math.Log(sumGYc)/alphaNRTL - tem + tme
		}
	}
	for _, cc := range o.cats {
		for _, aa := range o.ans {
			c.G4[quad{m, cc, aa, cc}] = math.Exp(-o.a4g(c, m, cc, aa, cc) * o.t4g(c, m, cc, aa, cc))
			c.G4[quad{m, aa, cc, aa}] = math.Exp(-o.a4g(c, m, aa, cc, aa) * o.t4g(c, m, aa, cc, aa))
			c.G4[quad{cc, aa, m, m}] = o.gAppr(pr(cc, aa), m)
			c.G4[quad{cc, aa, cc, aa}] = 1
			c.G4[quad{aa, cc, aa, cc}] = 1
			c.G4[quad{aa, aa, cc, aa}] = 0
			c.G4[quad{cc, cc, aa, cc}] = 0
			c.G4[quad{cc, cc, aa, aa}] = 0
			for _, ap := range o.ans {
				if aa != ap {
					c.G4[quad{aa, ap, cc, ap}] = 0
					c.G4[quad{ap, aa, cc, aa}] = 0
				}
			}
		}
	}
	for _, aa := range o.ans {
		for _, cc := range o.cats {
			for _, ap := range o.ans {
				if aa != ap {
					c.G4[quad{aa, cc, ap, cc}] = math.Exp(-o.a4g(c, aa, cc, ap, cc) * o.t4g(c, aa, cc, ap, cc))
				}
			}
		}
	}
}

// sums over the aqueous species excluding one ionic class
func (o *RefinedMulti) sum4(c *multiCore, excl []string, j, k, l string) (den, num float64) {
	for _, i := range o.aq {
		if contains(excl, i) {
			continue
		}
		g := o.g4g(c, i, j, k, l)
		den += c.X[i] * g
		num += c.X[i] * g * o.t4g(c, i, j, k, l)
	}
	return
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// lcCation returns the local composition contribution of cation cc
func (o *RefinedMulti) lcCation(c *multiCore, cc string) float64 {
	m := o.reg.Solvent.Name
	X := c.X
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += X[i]
	}
	for _, i := range o.ans {
		sumXa += X[i]
	}

	// solvent cell
	den, num := 0.0, 0.0
	for _, i := range o.aq {
		den += X[i] * c.G2[[2]string{i, m}]
		num += X[i] * c.G2[[2]string{i, m}] * c.t2[[2]string{i, m}]
	}
	t1 := c.G2[[2]string{cc, m}] * (c.t2[[2]string{cc, m}] - num/den)
	for _, aa := range o.ans {
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{aa, m}]
		al := o.a4g(c, aa, cc, m, m)
		t1 += X[aa] / (al * sumXc) * dG * (al*c.t2[[2]string{aa, m}] - 1)
		t1 -= (num / den) * X[aa] / sumXc * dG
	}
	t1 *= X[m] / den

	// cation cells
	t2 := 0.0
	for _, aa := range o.ans {
		d, n := o.sum4(c, o.cats, cc, aa, cc)
		t2 += (X[aa] / sumXa) * n / d
	}

	// anion cells
	t3 := 0.0
	for _, aa := range o.ans {
		sumGYc := 0.0
		for _, cpp := range o.cats {
			sumGYc += X[cpp] * o.g4g(c, cpp, aa, m, m)
		}
		inner := 0.0
		for _, cp := range o.cats {
			d, n := o.sum4(c, o.ans, aa, cp, aa)
			br := o.g4g(c, cc, aa, cp, aa) * (o.t4g(c, cc, aa, cp, aa) - n/d)
			dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{aa, m}]
			br += X[m] / (o.a4g(c, cp, aa, m, m) * sumGYc) * o.g4g(c, m, aa, cp, aa) * dG *
				(o.a4g(c, cc, aa, m, m)*o.t4g(c, m, aa, cp, aa) - 1)
			br -= (n / d) * X[m] / sumGYc * o.g4g(c, m, aa, cp, aa) * dG
			inner += (X[cp] / sumXc) / d * br
		}
		dc, nc := o.sum4(c, o.ans, aa, cc, aa)
		sub := 0.0
		for _, cp := range o.cats {
			dp, np := o.sum4(c, o.ans, aa, cp, aa)
			sub += (X[cp] / sumXc) * np / dp
		}
		t3 += X[aa] * (inner + (nc/dc-sub)/sumXc)
	}
	return o.zabs(cc) * (t1 + t2 + t3)
}

// lcAnion returns the local composition contribution of anion aa
func (o *RefinedMulti) lcAnion(c *multiCore, aa string) float64 {
	m := o.reg.Solvent.Name
	X := c.X
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += X[i]
	}
	for _, i := range o.ans {
		sumXa += X[i]
	}

	// solvent cell
	den, num := 0.0, 0.0
	for _, i := range o.aq {
		den += X[i] * c.G2[[2]string{i, m}]
		num += X[i] * c.G2[[2]string{i, m}] * c.t2[[2]string{i, m}]
	}
	t1 := c.G2[[2]string{aa, m}] * (c.t2[[2]string{aa, m}] - num/den)
	for _, cc := range o.cats {
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{cc, m}]
		al := o.a4g(c, cc, aa, m, m)
		t1 += X[cc] / (al * sumXa) * dG * (al*c.t2[[2]string{cc, m}] - 1)
		t1 -= (num / den) * X[cc] / sumXa * dG
	}
	t1 *= X[m] / den

	// anion cells
	t2 := 0.0
	for _, cc := range o.cats {
		d, n := o.sum4(c, o.ans, aa, cc, aa)
		t2 += (X[cc] / sumXc) * n / d
	}

	// cation cells
	t3 := 0.0
	for _, cc := range o.cats {
		sumGYa := 0.0
		for _, app := range o.ans {
			sumGYa += X[app] * o.g4g(c, cc, app, m, m)
		}
		inner := 0.0
		for _, ap := range o.ans {
			d, n := o.sum4(c, o.cats, cc, ap, cc)
			br := o.g4g(c, aa, cc, ap, cc) * (o.t4g(c, aa, cc, ap, cc) - n/d)
			dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{cc, m}]
			br += X[m] / (o.a4g(c, cc, ap, m, m) * sumGYa) * o.g4g(c, m, cc, ap, cc) * dG *
				(o.a4g(c, cc, ap, m, m)*o.t4g(c, m, cc, ap, cc) - 1)
			br -= (n / d) * X[m] / sumGYa * o.g4g(c, m, cc, ap, cc) * dG
			inner += (X[ap] / sumXa) / d * br
		}
		da, na := o.sum4(c, o.cats, cc, aa, cc)
		sub := 0.0
		for _, ap := range o.ans {
			dp, np := o.sum4(c, o.cats, cc, ap, cc)
			sub += (X[ap] / sumXa) * np / dp
		}
		t3 += X[cc] * (inner + (na/da-sub)/sumXa)
	}
	return o.zabs(aa) * (t1 + t2 + t3)
}

// lcSolvent returns the local composition contribution of the solvent
func (o *RefinedMulti) lcSolvent(c *multiCore, m string) float64 {
	X := c.X
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += X[i]
	}
	for _, i := range o.ans {
		sumXa += X[i]
	}
	den, num := 0.0, 0.0
	for _, i := range o.aq {
		den += X[i] * c.G2[[2]string{i, m}]
		num += X[i] * c.G2[[2]string{i, m}] * c.t2[[2]string{i, m}]
	}
	out := num / den
	out += (X[m] * c.G2[[2]string{m, m}] / den) * (c.t2[[2]string{m, m}] - num/den)
	for _, cc := range o.cats {
		for _, aa := range o.ans {
			d, n := o.sum4(c, nil, cc, aa, cc)
			out += (X[aa] / sumXa) * X[cc] * o.g4g(c, m, cc, aa, cc) / d *
				(o.t4g(c, m, cc, aa, cc) - n/d)
		}
	}
	for _, aa := range o.ans {
		for _, cc := range o.cats {
			d, n := o.sum4(c, nil, aa, cc, aa)
			out += (X[cc] / sumXc) * X[aa] * o.g4g(c, m, aa, cc, aa) / d *
				(o.t4g(c, m, aa, cc, aa) - n/d)
		}
	}
	return out
}

// infCation returns the infinite-dilution reference of cation cc
func (o *RefinedMulti) infCation(c *multiCore, cc string) float64 {
	m := o.reg.Solvent.Name
	X := c.X
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += X[i]
	}
	for _, i := range o.ans {
		sumXa += X[i]
	}
	out := 0.0
	for _, aa := range o.ans {
		out += (X[aa] / sumXa) * o.t4g(c, m, cc, aa, cc)
	}
	out += c.G2[[2]string{cc, m}] * c.t2[[2]string{cc, m}]
	for _, aa := range o.ans {
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{aa, m}]
		al := o.a4g(c, cc, aa, m, m)
		out += (X[aa] / sumXc) * dG * (al*c.t2[[2]string{aa, m}] - 1) / al
	}
	sub := 0.0
	for _, aa := range o.ans {
		sumGYc := 0.0
		for _, cpp := range o.cats {
			sumGYc += X[cpp] * o.g4g(c, cpp, aa, m, m)
		}
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{aa, m}]
		p1 := 0.0
		for _, cp := range o.cats {
			g := o.g4g(c, m, aa, cp, aa)
			p1 += (X[cp] / sumXc) / g *
				(dG*g*(o.a4g(c, cc, aa, m, m)*o.t4g(c, m, aa, cp, aa)-1)/
					(o.a4g(c, aa, cc, m, m)*sumGYc) -
					o.t4g(c, m, aa, cp, aa)*dG*g/sumGYc)
		}
		p2 := o.t4g(c, m, aa, cc, aa)
		for _, cp := range o.cats {
			p2 -= (X[cp] / sumXc) * o.t4g(c, m, aa, cp, aa)
		}
		sub += X[aa] * (p1 + p2/sumXc)
	}
	return o.zabs(cc) * (out - sub)
}

// infAnion returns the infinite-dilution reference of anion aa
func (o *RefinedMulti) infAnion(c *multiCore, aa string) float64 {
	m := o.reg.Solvent.Name
	X := c.X
	sumXc, sumXa := 0.0, 0.0
	for _, i := range o.cats {
		sumXc += X[i]
	}
	for _, i := range o.ans {
		sumXa += X[i]
	}
	out := 0.0
	for _, cc := range o.cats {
		out += (X[cc] / sumXc) * o.t4g(c, m, aa, cc, aa)
	}
	out += c.G2[[2]string{aa, m}] * c.t2[[2]string{aa, m}]
	for _, cc := range o.cats {
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{cc, m}]
		al := o.a4g(c, cc, aa, m, m)
		out += (X[cc] / sumXa) * dG * (al*c.t2[[2]string{cc, m}] - 1) / al
	}
	add := 0.0
	for _, cc := range o.cats {
		sumGYa := 0.0
		for _, app := range o.ans {
			sumGYa += X[app] * o.g4g(c, cc, app, m, m)
		}
		dG := o.g4g(c, cc, aa, m, m) - c.G2[[2]string{cc, m}]
		p1 := 0.0
		for _, ap := range o.ans {
			g := o.g4g(c, m, cc, ap, cc)
			p1 += (X[ap] / sumXa) / g *
				(dG*g*(o.a4g(c, cc, aa, m, m)*o.t4g(c, m, cc, ap, cc)-1)/
					(o.a4g(c, aa, cc, m, m)*sumGYa) -
					o.t4g(c, m, cc, ap, cc)*dG*g/sumGYa)
		}
		p2 := o.t4g(c, m, cc, aa, cc)
		for _, ap := range o.ans {
			p2 -= (X[ap] / sumXa) * o.t4g(c, m, cc, ap, cc)
		}
		add += X[cc] * (p1 + p2/sumXa)
	}
	return o.zabs(aa) * (out + add)
}

// Gamma computes activity coefficients at state
func (o *RefinedMulti) Gamma(res *Result, sta *State) (err error) {

	// check state and validity range
	if err = sta.Check(o.reg); err != nil {
		return
	}
	reg := o.reg
	for name, molal := range sta.Molality(reg) {
		if molal > o.MaxMolal {
			return &OutOfRangeError{
				Msg:   io.Sf("molality of %q is beyond the fitted range of the refined model", name),
				Value: molal, Limit: o.MaxMolal,
			}
		}
	}

	// pure solvent
	m := reg.Solvent.Name
	total := 0.0
	for _, e := range reg.Electrolytes {
		total += sta.Flow[e.Name]
	}
	if total == 0 {
		res.LnGamma[m] = 0
		for _, sp := range reg.Cations {
			res.LnGamma[sp.Name] = 0
		}
		for _, sp := range reg.Anions {
			res.LnGamma[sp.Name] = 0
		}
		for _, e := range reg.Electrolytes {
			res.LnGammaAppr[e.Name] = 0
			res.LnGammaMolal[e.Name] = 0
			res.Molality[e.Name] = 0
		}
		res.Hydration, res.IonicStr, res.PressureOsm = 0, 0, 0
		return nil
	}

	// contributions
	var c multiCore
	if err = o.eval(sta, &c); err != nil {
		return
	}
	for _, i := range o.aq {
		res.LnGamma[i] = c.pdh[i] + c.lc[i]
	}

	// per-electrolyte mean ionic activity coefficients, amount-weighted
	Fs := sta.Solvent(reg)
	for _, e := range reg.Electrolytes {
		nc, na := c.n[e.Cation], c.n[e.Anion]
		ne := nc + na
		if ne == 0 {
			res.LnGammaAppr[e.Name] = 0
			res.LnGammaMolal[e.Name] = 0
			continue
		}
		he := (o.spmap[e.Cation].H*nc + o.spmap[e.Anion].H*na) / ne
		mean := (res.LnGamma[e.Cation]*nc + res.LnGamma[e.Anion]*na) / ne
		res.LnGammaAppr[e.Name] = mean
		nIons := c.nSum - c.n[m]
		res.LnGammaMolal[e.Name] = mean - he*math.Log(c.X[m]*math.Exp(c.lc[m])) -
			math.Log((Fs+nIons-c.H)/Fs)
	}

	// auxiliary results
	res.Hydration = c.H
	res.IonicStr = c.I
	for name, molal := range sta.Molality(reg) {
		res.Molality[name] = molal
	}
	res.PressureOsm = -GasConst * sta.T * (math.Log(c.X[m]) + res.LnGamma[m]) * reg.DensMol.Value(sta.T)
	return nil
}
