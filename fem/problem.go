// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem provides the problem container that ties elements to an
// elasticity formulation variant
package fem

import (
	"github.com/riddle-and-lyre/elast/ele"
	esolid "github.com/riddle-and-lyre/elast/ele/solid"
	msolid "github.com/riddle-and-lyre/elast/mdl/solid"

	"github.com/cpmech/gosl/chk"
)

// Problem owns the spatial dimension, the formulation variant and an ordered
// collection of elements with their residual assemblers. Elements own
// disjoint integration points, thus residual evaluations for different
// elements may run concurrently; evaluations for the same element must be
// serialized by the caller.
type Problem struct {
	Ndim    int            // space dimension
	Variant msolid.Variant // formulation variant
	Elems   []*ele.Element // elements
	asm     []*esolid.Elast
}

// NewProblem returns a new problem holding the given elements.
// ndim == 0 selects the default dimension of the variant: 3 for Generic3D
// and 2 for PlaneStress.
func NewProblem(variant msolid.Variant, ndim int, elems []*ele.Element) *Problem {
	if ndim == 0 {
		ndim = variant.DefaultNdim()
	}
	if ndim < 2 || ndim > 3 {
		chk.Panic("ndim must be 2 or 3. ndim=%d is invalid", ndim)
	}
	o := &Problem{Ndim: ndim, Variant: variant}
	for _, e := range elems {
		o.AddElement(e)
	}
	return o
}

// AddElement appends an element and allocates its residual assembler
func (o *Problem) AddElement(e *ele.Element) {
	if e.Ndim != o.Ndim {
		chk.Panic("element %d has ndim=%d but problem has ndim=%d", e.Id, e.Ndim, o.Ndim)
	}
	o.Elems = append(o.Elems, e)
	o.asm = append(o.asm, esolid.New(e, o.Variant))
}

// Residual computes the residual of element idx at one integration point
func (o *Problem) Residual(idx int, ip *ele.IntPoint, time float64) (*esolid.Result, error) {
	return o.asm[idx].Residual(ip, time)
}

// ResidualVariation computes the directional variation of the residual of
// element idx at one integration point
func (o *Problem) ResidualVariation(idx int, ip *ele.IntPoint, time float64, direction [][]float64) (*esolid.Result, error) {
	return o.asm[idx].ResidualVariation(ip, time, direction)
}

// ElemInfo returns the DOF layout of element idx
func (o *Problem) ElemInfo(idx int) *ele.Info {
	e := o.Elems[idx]
	return ele.NewUInfo(e.Ndim, e.Nverts)
}

// Residual is the public entry point for one-off evaluations: it computes the
// residual of one element at one integration point for a given problem
// variant. A nil direction evaluates the residual itself; a non-nil direction
// evaluates its directional variation.
func Residual(variant msolid.Variant, elem *ele.Element, ip *ele.IntPoint, time float64, direction [][]float64) (*esolid.Result, error) {
	asm := esolid.New(elem, variant)
	if direction != nil {
		return asm.ResidualVariation(ip, time, direction)
	}
	return asm.Residual(ip, time)
}
