// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite element entities
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Shape defines the basis-function evaluation contract. Implementations are
// external collaborators: interpolation functions and quadrature schemes live
// on their side of this interface.
type Shape interface {

	// CalcAtIp computes quantities at a given integration point and time
	//  Output:
	//   S -- [nverts] basis-function values
	//   G -- [nverts][ndim] spatial gradients of basis functions
	//   J -- determinant of the Jacobian of the isoparametric mapping
	CalcAtIp(ip *IntPoint, time float64) (S []float64, G [][]float64, J float64, err error)
}

// Element holds one finite element: its node count, its set of named fields
// and a basis-function evaluator. Elements are owned by a Problem for
// bookkeeping, but each element is independently addressable.
type Element struct {
	Id     int                 // element id
	Ndim   int                 // space dimension
	Nverts int                 // number of nodes
	Shp    Shape               // basis-function evaluator
	Fields map[FieldKey]*Field // fields; absence of a key deactivates the corresponding term
}

// NewElement returns a new element with an empty field set
func NewElement(id, ndim, nverts int, shape Shape) *Element {
	if ndim < 2 || ndim > 3 {
		chk.Panic("element %d: ndim must be 2 or 3. ndim=%d is invalid", id, ndim)
	}
	if nverts < 1 {
		chk.Panic("element %d: nverts must be positive. nverts=%d is invalid", id, nverts)
	}
	return &Element{
		Id:     id,
		Ndim:   ndim,
		Nverts: nverts,
		Shp:    shape,
		Fields: make(map[FieldKey]*Field),
	}
}

// HasField tells whether a field is present on this element
func (o *Element) HasField(key FieldKey) bool {
	_, ok := o.Fields[key]
	return ok
}

// SetField attaches a field to this element. It panics if the field shape
// disagrees with the element's ndim and nverts.
func (o *Element) SetField(key FieldKey, f *Field) {
	f.checkDims(o.Id, key, o.Ndim, o.Nverts)
	o.Fields[key] = f
}

// SetSolidMaterial sets the "youngs modulus" and "poissons ratio" fields from
// a database of parameters
//  Example:
//   e.SetSolidMaterial([]*dbf.P{
//       &dbf.P{N: "E", V: 210000},
//       &dbf.P{N: "nu", V: 0.3},
//   })
func (o *Element) SetSolidMaterial(prms dbf.Params) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.SetField(YoungsModulus, NewScalarField(p.V))
		case "nu":
			o.SetField(PoissonsRatio, NewScalarField(p.V))
		}
	}
}
