// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Correlation implements the two-parameter reciprocal-temperature correlation
//
//	p(T) = A + B * (1/T - 1/Tref)
//
// used, for instance, for the relative permittivity of water with
// A=78.54003, B=31989.38 and Tref=298.15 [1]
//
//	References:
//	 [1] Song Y, Chen CC (2009) Symmetric Electrolyte Nonrandom Two-Liquid
//	     Activity Coefficient Model. Ind. Eng. Chem. Res. 48(16):7788-7797
type Correlation struct {
	A    float64 // value at the reference temperature
	B    float64 // reciprocal-temperature slope
	Tref float64 // reference temperature [K]
}

// add provider to factory
func init() {
	allocators["invT"] = func() Scalar { return new(Correlation) }
}

// Init initialises this structure
func (o *Correlation) Init(prms utl.Params) error {
	o.Tref = 298.15
	e := prms.ConnectSet([]*float64{&o.A, &o.B}, []string{"a", "b"}, "invT property")
	if e != "" {
		return chk.Err("%v", e)
	}
	if prm := prms.Find("tref"); prm != nil {
		o.Tref = prm.V
	}
	return nil
}

// Value returns the property at temperature T [K]
func (o *Correlation) Value(T float64) float64 {
	return o.A + o.B*(1.0/T-1.0/o.Tref)
}
