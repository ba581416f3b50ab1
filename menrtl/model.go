// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package menrtl implements electrolyte-NRTL activity coefficient models for
// aqueous electrolyte solutions: the classic symmetric eNRTL and the refined
// eNRTL (r-eNRTL) with hydration corrections, in single- and multi-electrolyte
// variants
//  References:
//   [1] Song Y and Chen CC (2009) Symmetric electrolyte nonrandom two-liquid
//       activity coefficient model. Ind Eng Chem Res 48(16) 7788-7797
//   [2] Bollas GM, Chen CC and Barton PI (2008) Refined electrolyte-NRTL model:
//       activity coefficient expressions for application to multi-electrolyte
//       systems. AIChE J 54(6) 1608-1624
//   [3] Yang X, Dowling AW (2023-2024) refined eNRTL with stepwise hydration
//       for desalination brines
package menrtl

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Model defines activity-coefficient models for aqueous electrolytes
type Model interface {
	Init(reg *Registry, prms utl.Params) error // Init initialises this structure
	GetPrms(example bool) utl.Params           // gets (an example) of parameters
	Gamma(res *Result, sta *State) error       // computes activity coefficients at state
}

// Result holds the output of one activity-coefficient evaluation. All entries
// are on natural-log scale except where noted
type Result struct {
	LnGamma      map[string]float64 // per true species: ln γ (mole fraction scale)
	LnGammaAppr  map[string]float64 // per electrolyte: mean ionic ln γ± (mole fraction scale)
	LnGammaMolal map[string]float64 // per electrolyte: mean ionic ln γ± (molal scale)
	Hydration    float64            // total hydration number (single: per mol electrolyte; multi: mol/s)
	IonicStr     float64            // ionic strength (volume scale [mol/m³]; classic model: mole-fraction scale)
	Molality     map[string]float64 // per electrolyte: molal concentration [mol/kg solvent]
	PressureOsm  float64            // osmotic pressure [Pa]
}

// NewResult allocates a result structure for the species of reg
func NewResult(reg *Registry) (res *Result) {
	res = new(Result)
	res.LnGamma = make(map[string]float64)
	res.LnGammaAppr = make(map[string]float64)
	res.LnGammaMolal = make(map[string]float64)
	res.Molality = make(map[string]float64)
	return
}

// New returns a new activity-coefficient model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, cfgErr("model %q is not available in 'menrtl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// VaporPressure returns the equilibrium partial pressure of the solvent by
// the modified Raoult law, given the solvent mole fraction and the saturation
// pressure Psat [Pa]
func VaporPressure(res *Result, solvent string, xSolvent, Psat float64) float64 {
	return math.Exp(res.LnGamma[solvent]) * xSolvent * Psat
}
