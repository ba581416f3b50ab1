// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import (
	"github.com/watertap-org/watertap-renrtl/prop"
)

// Species holds the pure-component data of one ionic or solvent species
type Species struct {

	// essential
	Name   string  // species name; e.g. "Na+", "Cl-", "H2O"
	Charge int     // ionic charge number; zero for the solvent
	Mw     float64 // molecular weight [kg/mol]

	// ionic data
	R  float64 // Pauling ionic radius [angstrom]
	Vq float64 // quasi-lattice partial molar volume [cm3/mol]
	H  float64 // constant hydration number

	// stepwise hydration data
	Hmin   float64 // minimum hydration number
	Nsites float64 // number of available hydration sites
}

// Zabs returns the absolute charge number
func (o *Species) Zabs() float64 {
	if o.Charge < 0 {
		return float64(-o.Charge)
	}
	return float64(o.Charge)
}

// Electrolyte holds the data of one apparent electrolyte component
type Electrolyte struct {
	Name   string  // apparent component name; e.g. "NaCl"
	Cation string  // name of the dissociated cation
	Anion  string  // name of the dissociated anion
	NuC    float64 // stoichiometric coefficient of the cation
	NuA    float64 // stoichiometric coefficient of the anion
	Kh     float64 // stepwise hydration equilibrium constant
}

// Nu returns the total number of moles of ions per mole of electrolyte
func (o *Electrolyte) Nu() float64 {
	return o.NuC + o.NuA
}

// TauTable maps ordered (from,to) pairs of component names to binary
// interaction energy parameters. Keys are electrolyte names or the solvent
// name; e.g. {"H2O","NaCl"} and {"NaCl","H2O"} are two distinct entries
type TauTable map[[2]string]float64

// Get returns the interaction parameter for the ordered pair (from,to)
func (o TauTable) Get(from, to string) (val float64, ok bool) {
	val, ok = o[[2]string{from, to}]
	return
}

// Set stores the interaction parameter for the ordered pair (from,to)
func (o TauTable) Set(from, to string, val float64) {
	o[[2]string{from, to}] = val
}

// Registry collects the chemical system definition: the solvent, the ionic
// species, the apparent electrolyte components, the binary interaction
// parameters, and the solvent property providers. Species and electrolytes
// keep their registration order so that repeated evaluations of the same
// system produce bit-identical results
type Registry struct {

	// components
	Solvent      *Species       // the (single) molecular solvent
	Cations      []*Species     // cationic species, in registration order
	Anions       []*Species     // anionic species, in registration order
	Electrolytes []*Electrolyte // apparent components, in registration order

	// interaction parameters
	Tau TauTable // nonrandomness energy parameters

	// solvent properties
	RelPerm prop.Scalar // relative permittivity as a function of temperature
	DensMol prop.Scalar // molar density [mol/m3] as a function of temperature

	// derived
	species map[string]*Species     // name => species (ions and solvent)
	epairs  map[string]*Electrolyte // name => electrolyte
}

// NewRegistry returns a new Registry with the given solvent
func NewRegistry(solvent *Species) *Registry {
	o := new(Registry)
	o.Solvent = solvent
	o.Tau = make(TauTable)
	o.species = map[string]*Species{solvent.Name: solvent}
	o.epairs = make(map[string]*Electrolyte)
	return o
}

// AddIon registers one ionic species. An error is returned if the charge is
// zero or the name clashes with a previous registration
func (o *Registry) AddIon(sp *Species) error {
	if sp.Charge == 0 {
		return cfgErr("species %q cannot be registered as an ion with zero charge", sp.Name)
	}
	if _, found := o.species[sp.Name]; found {
		return cfgErr("species %q is already registered", sp.Name)
	}
	o.species[sp.Name] = sp
	if sp.Charge > 0 {
		o.Cations = append(o.Cations, sp)
	} else {
		o.Anions = append(o.Anions, sp)
	}
	return nil
}

// AddElectrolyte registers one apparent electrolyte component. Its cation and
// anion must have been registered beforehand
func (o *Registry) AddElectrolyte(e *Electrolyte) error {
	if _, found := o.epairs[e.Name]; found {
		return cfgErr("electrolyte %q is already registered", e.Name)
	}
	c, found := o.species[e.Cation]
	if !found || c.Charge <= 0 {
		return cfgErr("electrolyte %q: cation %q is not a registered cation", e.Name, e.Cation)
	}
	a, found := o.species[e.Anion]
	if !found || a.Charge >= 0 {
		return cfgErr("electrolyte %q: anion %q is not a registered anion", e.Name, e.Anion)
	}
	if e.NuC < 1 || e.NuA < 1 {
		return cfgErr("electrolyte %q: stoichiometric coefficients must be positive", e.Name)
	}
	o.epairs[e.Name] = e
	o.Electrolytes = append(o.Electrolytes, e)
	return nil
}

// Species returns a registered species by name
func (o *Registry) Species(name string) (sp *Species, err error) {
	sp, found := o.species[name]
	if !found {
		return nil, cfgErr("species %q is not registered", name)
	}
	return
}

// Cation returns the cation species of the given electrolyte
func (o *Registry) Cation(e *Electrolyte) *Species {
	return o.species[e.Cation]
}

// Anion returns the anion species of the given electrolyte
func (o *Registry) Anion(e *Electrolyte) *Species {
	return o.species[e.Anion]
}

// Beta returns the empirical closest-approach exponent of the given
// electrolyte, selected by the (|z_c|,|z_a|) charge pattern
func (o *Registry) Beta(e *Electrolyte) (beta float64, err error) {
	key := [2]int{int(o.Cation(e).Zabs()), int(o.Anion(e).Zabs())}
	beta, found := betaTable[key]
	if !found {
		return 0, cfgErr("electrolyte %q: no closest-approach parameter for the %d-%d charge pattern", e.Name, key[0], key[1])
	}
	return
}

// TauSolvent returns the solvent<=>electrolyte pair of interaction parameters
func (o *Registry) TauSolvent(e *Electrolyte) (tauME, tauEM float64, err error) {
	m := o.Solvent.Name
	tauME, ok := o.Tau.Get(m, e.Name)
	if !ok {
		return 0, 0, cfgErr("missing interaction parameter (%q,%q)", m, e.Name)
	}
	tauEM, ok = o.Tau.Get(e.Name, m)
	if !ok {
		return 0, 0, cfgErr("missing interaction parameter (%q,%q)", e.Name, m)
	}
	return
}

// TauCross returns the electrolyte<=>electrolyte interaction parameter
func (o *Registry) TauCross(e, ep *Electrolyte) (tau float64, err error) {
	tau, ok := o.Tau.Get(e.Name, ep.Name)
	if !ok {
		return 0, cfgErr("missing interaction parameter (%q,%q)", e.Name, ep.Name)
	}
	return
}

// Validate checks the completeness of the system definition:
//  1. at least one electrolyte is registered and every registered ion belongs
//     to at least one electrolyte
//  2. each electrolyte has the two solvent interaction parameters and a
//     closest-approach parameter for its charge pattern
//  3. electrolytes sharing a cation have explicit cross interaction
//     parameters in both directions
//  4. the solvent property providers are set
func (o *Registry) Validate() (err error) {

	// components
	if len(o.Electrolytes) < 1 {
		return cfgErr("at least one electrolyte must be registered")
	}
	used := make(map[string]bool)
	for _, e := range o.Electrolytes {
		used[e.Cation] = true
		used[e.Anion] = true
	}
	for _, sp := range o.Cations {
		if !used[sp.Name] {
			return cfgErr("cation %q does not belong to any registered electrolyte", sp.Name)
		}
	}
	for _, sp := range o.Anions {
		if !used[sp.Name] {
			return cfgErr("anion %q does not belong to any registered electrolyte", sp.Name)
		}
	}

	// solvent and closest-approach parameters
	for _, e := range o.Electrolytes {
		if _, _, err = o.TauSolvent(e); err != nil {
			return
		}
		if _, err = o.Beta(e); err != nil {
			return
		}
	}

	// cross parameters for cation-sharing electrolytes
	for _, e := range o.Electrolytes {
		for _, ep := range o.Electrolytes {
			if e == ep || e.Cation != ep.Cation {
				continue
			}
			if _, err = o.TauCross(e, ep); err != nil {
				return
			}
		}
	}

	// property providers
	if o.RelPerm == nil {
		return cfgErr("the relative permittivity provider of solvent %q is not set", o.Solvent.Name)
	}
	if o.DensMol == nil {
		return cfgErr("the molar density provider of solvent %q is not set", o.Solvent.Name)
	}
	return
}

// NumTau returns the number of interaction parameters a complete definition
// of this system requires
func (o *Registry) NumTau() (n int) {
	n = 2 * len(o.Electrolytes)
	for _, e := range o.Electrolytes {
		for _, ep := range o.Electrolytes {
			if e != ep && e.Cation == ep.Cation {
				n++
			}
		}
	}
	return
}
