// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

// physical constants (CODATA 2018)
const (
	Avogadro   = 6.02214076e23    // [1/mol]
	Boltzmann  = 1.380649e-23     // [J/K]
	ElemCharge = 1.602176634e-19  // [C]
	Faraday    = 96485.33212      // [C/mol]
	GasConst   = 8.314462618      // [J/(mol·K)]
	Eps0       = 8.8541878128e-12 // vacuum electric permittivity [F/m]
)

// model constants
const (
	// distanceSpecies is the distance between a solute and the solvent [Å]
	distanceSpecies = 1.9277

	// empiricalRadius is the empirical correction added to ionic radii
	// when computing intrinsic (Glueckauf) molar volumes [Å]
	empiricalRadius = 0.55

	// angstrom in metres
	angstrom = 1e-10

	// cm3toM3 converts partial molar volumes given in cm³/mol
	cm3toM3 = 1e-6

	// alphaNRTL is the nonrandomness factor of aqueous electrolytes
	alphaNRTL = 0.2
)

// betaTable maps the |z_cation|,|z_anion| pair of an electrolyte to the
// electrostricted-water radius factor β of its hydration shell
var betaTable = map[[2]int]float64{
	{1, 1}: 0.9695492,
	{2, 1}: 0.9192301707,
	{1, 2}: 0.8144420812,
	{2, 2}: 0.1245007,
	{3, 1}: 0.7392229,
}
