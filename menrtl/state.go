// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

// State holds one thermodynamic state on the apparent-component basis: the
// temperature, the pressure, and the molar flows of the solvent and of each
// undissociated electrolyte
type State struct {
	T    float64            // temperature [K]
	P    float64            // pressure [Pa]
	Flow map[string]float64 // apparent component name => molar flow [mol/s]
}

// NewState returns a new state at temperature T [K] and pressure P [Pa]
func NewState(T, P float64) *State {
	return &State{T: T, P: P, Flow: make(map[string]float64)}
}

// Set defines the molar flow of one apparent component
func (o *State) Set(name string, flow float64) *State {
	o.Flow[name] = flow
	return o
}

// Clone returns a deep copy of this state
func (o *State) Clone() *State {
	n := NewState(o.T, o.P)
	for k, v := range o.Flow {
		n.Flow[k] = v
	}
	return n
}

// Check verifies that the state carries a positive solvent flow and a
// nonnegative flow for every electrolyte of reg
func (o *State) Check(reg *Registry) error {
	if o.T <= 0 {
		return domErr("temperature T=%g must be positive", o.T)
	}
	fs, found := o.Flow[reg.Solvent.Name]
	if !found || fs <= 0 {
		return cfgErr("state must carry a positive flow of solvent %q", reg.Solvent.Name)
	}
	for _, e := range reg.Electrolytes {
		if f, found := o.Flow[e.Name]; !found || f < 0 {
			return cfgErr("state must carry a nonnegative flow of electrolyte %q", e.Name)
		}
	}
	return nil
}

// Solvent returns the molar flow of the solvent
func (o *State) Solvent(reg *Registry) float64 {
	return o.Flow[reg.Solvent.Name]
}

// Dissolve returns the true-species ionic flows implied by complete
// dissociation of the apparent electrolytes, in the registration order of the
// cations followed by the anions of reg
func (o *State) Dissolve(reg *Registry) (flows map[string]float64) {
	flows = make(map[string]float64)
	for _, sp := range reg.Cations {
		flows[sp.Name] = 0
	}
	for _, sp := range reg.Anions {
		flows[sp.Name] = 0
	}
	for _, e := range reg.Electrolytes {
		fe := o.Flow[e.Name]
		flows[e.Cation] += e.NuC * fe
		flows[e.Anion] += e.NuA * fe
	}
	return
}

// Molality returns the molal concentration [mol/kg solvent] of each
// electrolyte of reg at this state
func (o *State) Molality(reg *Registry) (molal map[string]float64) {
	molal = make(map[string]float64)
	mkg := o.Solvent(reg) * reg.Solvent.Mw
	for _, e := range reg.Electrolytes {
		molal[e.Name] = o.Flow[e.Name] / mkg
	}
	return
}
