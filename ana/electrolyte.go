// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for checking activity
// coefficient models: the Debye-Hückel laws of dilute electrolytes and the
// colligative relations of the solvent
package ana

import "math"

// GasConst is the molar gas constant [J/(mol·K)]
const GasConst = 8.314462618

// DebyeHuckel implements the extended Debye-Hückel law
//
//	ln γ± = -A·|z₊·z₋|·sqrt(I) / (1 + B·sqrt(I))
//
// which every electrolyte activity model must approach at infinite dilution
type DebyeHuckel struct {
	A float64 // Debye-Hückel slope on the chosen ionic strength scale
	B float64 // closest-approach factor; zero gives the limiting law
}

// LnGammaIon returns the single-ion activity coefficient at ionic strength I
func (o *DebyeHuckel) LnGammaIon(z, I float64) float64 {
	sq := math.Sqrt(I)
	return -o.A * z * z * sq / (1 + o.B*sq)
}

// LnGammaMean returns the mean ionic activity coefficient of a z₊/z₋
// electrolyte at ionic strength I
func (o *DebyeHuckel) LnGammaMean(zc, za, I float64) float64 {
	sq := math.Sqrt(I)
	return -o.A * zc * za * sq / (1 + o.B*sq)
}

// OsmoticPressure returns the osmotic pressure [Pa] of a solution with
// solvent activity a = exp(lnAw) at temperature T [K], with densMol the molar
// density of the pure solvent [mol/m³]
func OsmoticPressure(lnAw, T, densMol float64) float64 {
	return -GasConst * T * lnAw * densMol
}

// RaoultPressure returns the equilibrium partial pressure of the solvent by
// the modified Raoult law
func RaoultPressure(gamma, x, psat float64) float64 {
	return gamma * x * psat
}

// BoilingRatio returns the ratio of the solution vapour pressure to the pure
// solvent one; values below one indicate boiling point elevation
func BoilingRatio(gamma, x float64) float64 {
	return gamma * x
}
