// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Constant implements a temperature-independent property
type Constant struct {
	C float64 // the constant value
}

// add provider to factory
func init() {
	allocators["cte"] = func() Scalar { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(prms utl.Params) error {
	e := prms.Connect(&o.C, "c", "cte property")
	if e != "" {
		return chk.Err("%v", e)
	}
	return nil
}

// Value returns the property at temperature T [K]
func (o *Constant) Value(T float64) float64 {
	return o.C
}
