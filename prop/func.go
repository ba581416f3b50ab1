// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "github.com/cpmech/gosl/utl"

// Func adapts a user-supplied function to the Scalar capability. It cannot be
// selected by name from input files; callers set it on the registry directly
type Func func(T float64) float64

// Init initialises this structure
func (o Func) Init(prms utl.Params) error { return nil }

// Value returns the property at temperature T [K]
func (o Func) Value(T float64) float64 { return o(T) }
