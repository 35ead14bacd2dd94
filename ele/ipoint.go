// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"
)

// IntPoint holds the data of one integration point: its local coordinate, its
// weight and a mutable auxiliary-state slot. The residual assemblers never
// write the auxiliary state themselves; callers persist tensors explicitly,
// e.g. ip.SetAux("gl strain", res.E). Concurrent writes for the same point
// must be serialized by the caller.
type IntPoint struct {
	Idx int                    // index of this point within the element
	R   []float64              // local coordinates
	W   float64                // weight
	Aux map[string][][]float64 // auxiliary state: key => tensor
}

// NewIntPoint returns a new integration point with an empty auxiliary-state slot
func NewIntPoint(idx int, r []float64, w float64) *IntPoint {
	return &IntPoint{
		Idx: idx,
		R:   r,
		W:   w,
		Aux: make(map[string][][]float64),
	}
}

// SetAux stores a copy of a tensor in the auxiliary-state slot, overwriting
// any prior value under the same key
func (o *IntPoint) SetAux(key string, val [][]float64) {
	o.Aux[key] = utl.Clone(val)
}

// GetAux returns the tensor stored under key, or nil if no value was stored
func (o *IntPoint) GetAux(key string) [][]float64 {
	return o.Aux[key]
}
