// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import "math"

// ionVolume returns the intrinsic (Glueckauf) molar volume [m³/mol] of an ion
// with Pauling radius r [angstrom]
func ionVolume(r float64) float64 {
	d := (r + empiricalRadius) * angstrom
	return (4.0 / 3.0) * math.Pi * Avogadro * d * d * d
}

// closestApproach returns the distance of closest approach a_r [m] of one
// electrolyte: each ion contributes the radius of its hydrated sphere, built
// from havg electrostricted water molecules of radius β·1.9277 angstrom
func closestApproach(havg, beta float64, rions ...float64) (ar float64) {
	hv := math.Max(0, havg)
	d := beta * distanceSpecies
	for _, r := range rions {
		ar += math.Cbrt(hv*d*d*d + r*r*r)
	}
	return ar * angstrom
}

// bornFactor returns sqrt(2F²/(ε₀·εr·R·T)) [1/(m·sqrt(mol/m³))], the
// electrostatic factor of the extended Debye-Hückel screening length
func bornFactor(epsr, T float64) float64 {
	return math.Sqrt(2 * Faraday * Faraday / (Eps0 * epsr * GasConst * T))
}

// pdhVolumeF returns the composite function of the volume contribution to the
// Pitzer-Debye-Hückel term
//
//	f(x) = (1+x) - 1/(1+x) - 2·ln(1+x)   with x = b·sqrt(I)
func pdhVolumeF(x float64) float64 {
	return (1 + x) - 1/(1+x) - 2*math.Log(1+x)
}
