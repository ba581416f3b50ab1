// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements pure-component property providers. Temperature
// dependent quantities such as the relative permittivity or the molar density
// of the solvent are supplied to the models through the Scalar capability so
// that constants, correlations, and user functions are interchangeable
package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Scalar defines a scalar pure-component property as a function of temperature
type Scalar interface {
	Init(prms utl.Params) error // Init initialises this structure
	Value(T float64) float64    // Value returns the property at temperature T [K]
}

// New returns a new property provider
func New(name string) (scalar Scalar, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("property provider %q is not available in 'prop' database", name)
	}
	return allocator(), nil
}

// allocators holds all available providers
var allocators = map[string]func() Scalar{}
