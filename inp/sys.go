// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sys) JSON file: the
// chemical system definition, the model selection, and the feed states
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/watertap-org/watertap-renrtl/menrtl"
	"github.com/watertap-org/watertap-renrtl/prop"
)

// PropData holds the selection of one pure-component property provider
type PropData struct {
	Name string     `json:"name"` // provider name; e.g. "cte", "invT"
	Prms utl.Params `json:"prms"` // provider parameters
}

// SpeciesData holds the input data of one species
type SpeciesData struct {
	Name   string  `json:"name"`   // species name; e.g. "Na+"
	Charge int     `json:"charge"` // ionic charge number; zero for the solvent
	Mw     float64 `json:"mw"`     // molecular weight [kg/mol]
	R      float64 `json:"r"`      // Pauling ionic radius [angstrom]
	Vq     float64 `json:"vq"`     // quasi-lattice partial molar volume [cm3/mol]
	H      float64 `json:"h"`      // constant hydration number
	Hmin   float64 `json:"hmin"`   // minimum hydration number (stepwise)
	Nsites float64 `json:"nsites"` // number of hydration sites (stepwise)
}

// ElectrolyteData holds the input data of one apparent electrolyte
type ElectrolyteData struct {
	Name   string  `json:"name"`   // apparent component name; e.g. "NaCl"
	Cation string  `json:"cation"` // cation species name
	Anion  string  `json:"anion"`  // anion species name
	NuC    float64 `json:"nuc"`    // stoichiometric coefficient of the cation
	NuA    float64 `json:"nua"`    // stoichiometric coefficient of the anion
	Kh     float64 `json:"kh"`     // stepwise hydration equilibrium constant
}

// TauData holds one binary interaction parameter
type TauData struct {
	From string  `json:"from"` // first component; e.g. "H2O"
	To   string  `json:"to"`   // second component; e.g. "NaCl"
	V    float64 `json:"v"`    // energy parameter value
}

// FeedData holds one feed state on the apparent-component basis
type FeedData struct {
	Desc string             `json:"desc"` // description; e.g. "brine"
	T    float64            `json:"t"`    // temperature [K]
	P    float64            `json:"p"`    // pressure [Pa]
	Flow map[string]float64 `json:"flow"` // component name => molar flow [mol/s]
}

// State returns the menrtl state of this feed
func (o *FeedData) State() *menrtl.State {
	sta := menrtl.NewState(o.T, o.P)
	for name, f := range o.Flow {
		sta.Set(name, f)
	}
	return sta
}

// System holds all data of one system (.sys) file
type System struct {

	// input data
	Desc         string             `json:"desc"`         // description of system
	Model        string             `json:"model"`        // model name; e.g. "renrtl"
	Prms         utl.Params         `json:"prms"`         // model parameters
	Solvent      SpeciesData        `json:"solvent"`      // the molecular solvent
	RelPerm      PropData           `json:"relperm"`      // relative permittivity provider
	DensMol      PropData           `json:"densmol"`      // solvent molar density provider
	Ions         []*SpeciesData     `json:"ions"`         // ionic species
	Electrolytes []*ElectrolyteData `json:"electrolytes"` // apparent components
	Tau          []*TauData         `json:"tau"`          // interaction parameters
	Feeds        []*FeedData        `json:"feeds"`        // feed states
	Scaling      map[string]float64 `json:"scaling"`      // scaling-factor hints for the host solver (metadata only)

	// derived
	Key string           // filename key of the .sys file
	Reg *menrtl.Registry // assembled registry
	Mdl menrtl.Model     // initialised model
}

// species converts input data into a menrtl species
func (o *SpeciesData) species() *menrtl.Species {
	return &menrtl.Species{
		Name: o.Name, Charge: o.Charge, Mw: o.Mw,
		R: o.R, Vq: o.Vq, H: o.H, Hmin: o.Hmin, Nsites: o.Nsites,
	}
}

// provider allocates and initialises one property provider
func (o *PropData) provider() (prop.Scalar, error) {
	s, err := prop.New(o.Name)
	if err != nil {
		return nil, err
	}
	if err = s.Init(o.Prms); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadSys reads all system data from a .sys JSON file and assembles the
// registry and the model
func ReadSys(syspath string) (o *System, err error) {

	// read and decode. ReadFile panics on a missing file, so check first
	if _, err = os.Stat(syspath); err != nil {
		return nil, chk.Err("ReadSys: cannot read system file %q", syspath)
	}
	b := io.ReadFile(syspath)
	o = new(System)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadSys: cannot unmarshal system file %q: %v", syspath, err)
	}
	o.Key = io.FnKey(filepath.Base(syspath))

	// registry
	o.Reg = menrtl.NewRegistry(o.Solvent.species())
	for _, sp := range o.Ions {
		if err = o.Reg.AddIon(sp.species()); err != nil {
			return nil, err
		}
	}
	for _, e := range o.Electrolytes {
		err = o.Reg.AddElectrolyte(&menrtl.Electrolyte{
			Name: e.Name, Cation: e.Cation, Anion: e.Anion,
			NuC: e.NuC, NuA: e.NuA, Kh: e.Kh,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, t := range o.Tau {
		o.Reg.Tau.Set(t.From, t.To, t.V)
	}

	// property providers
	if o.Reg.RelPerm, err = o.RelPerm.provider(); err != nil {
		return nil, err
	}
	if o.Reg.DensMol, err = o.DensMol.provider(); err != nil {
		return nil, err
	}

	// model
	if o.Mdl, err = menrtl.New(o.Model); err != nil {
		return nil, err
	}
	if err = o.Mdl.Init(o.Reg, o.Prms); err != nil {
		return nil, err
	}
	return o, nil
}
