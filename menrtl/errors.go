// Copyright 2026 The WaterTAP-rENRTL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menrtl

import "github.com/cpmech/gosl/io"

// ConfigurationError indicates an inconsistent or incomplete parameter
// registry: wrong species sets, missing interaction parameters, or an
// electrolyte charge pairing outside the supported β table
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// cfgErr creates a new ConfigurationError with a formatted message
func cfgErr(msg string, prm ...interface{}) error {
	return &ConfigurationError{Msg: io.Sf(msg, prm...)}
}

// OutOfRangeError indicates a state outside the fitted validity range of the
// interaction parameters; e.g. a molality beyond the saturation bound
type OutOfRangeError struct {
	Msg   string
	Value float64 // offending value
	Limit float64 // documented bound
}

func (e *OutOfRangeError) Error() string {
	return io.Sf("%s: value=%g limit=%g", e.Msg, e.Value, e.Limit)
}

// NumericDomainError indicates that an intermediate quantity left the domain
// of the expressions; e.g. hydration consuming all free solvent
type NumericDomainError struct {
	Msg string
}

func (e *NumericDomainError) Error() string { return e.Msg }

func domErr(msg string, prm ...interface{}) error {
	return &NumericDomainError{Msg: io.Sf(msg, prm...)}
}
