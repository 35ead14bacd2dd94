// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FieldKey identifies one of the recognized element fields. The set of keys
// is closed: the assemblers only look up the constants below.
type FieldKey string

// recognized field keys
const (
	Displacement     FieldKey = "displacement"
	YoungsModulus    FieldKey = "youngs modulus"
	PoissonsRatio    FieldKey = "poissons ratio"
	DisplacementLoad FieldKey = "displacement load"
	TractionForce    FieldKey = "displacement traction force"
)

// field kinds
const (
	scalarKind = iota // constant scalar
	vectorKind        // constant vector
	tensorKind        // constant second-order tensor
	nodalKind         // one vector per node
	ipKind            // one scalar per integration point
)

// Field holds one element field. Exactly one value slot is used, selected by
// the kind. Fcn, when set, scales the value in time.
type Field struct {
	Val    float64     // constant scalar value
	Vec    []float64   // [ndim] constant vector value
	Ten    [][]float64 // [ndim][ndim] constant tensor value
	Nodal  [][]float64 // [nverts][ndim] per-node vectors
	IpVals []float64   // [nip] per-integration-point scalars
	Fcn    dbf.T       // optional time function multiplying the value
	kind   int
}

// NewScalarField returns a constant scalar field
func NewScalarField(val float64) *Field {
	return &Field{Val: val, kind: scalarKind}
}

// NewVectorField returns a constant vector field
func NewVectorField(vec []float64) *Field {
	return &Field{Vec: vec, kind: vectorKind}
}

// NewTensorField returns a constant second-order tensor field
func NewTensorField(ten [][]float64) *Field {
	return &Field{Ten: ten, kind: tensorKind}
}

// NewNodalField returns a field with one vector per node
func NewNodalField(nodal [][]float64) *Field {
	return &Field{Nodal: nodal, kind: nodalKind}
}

// NewIpField returns a field with one scalar per integration point
func NewIpField(vals []float64) *Field {
	return &Field{IpVals: vals, kind: ipKind}
}

// WithFcn sets the time function of this field and returns the field itself
func (o *Field) WithFcn(fcn dbf.T) *Field {
	o.Fcn = fcn
	return o
}

// checkDims panics if the field shape disagrees with the element dimensions
func (o *Field) checkDims(eid int, key FieldKey, ndim, nverts int) {
	switch o.kind {
	case vectorKind:
		if len(o.Vec) != ndim {
			chk.Panic("element %d: vector field %q must have %d components. %d is invalid", eid, key, ndim, len(o.Vec))
		}
	case tensorKind:
		if len(o.Ten) != ndim {
			chk.Panic("element %d: tensor field %q must be %dx%d", eid, key, ndim, ndim)
		}
		for _, row := range o.Ten {
			if len(row) != ndim {
				chk.Panic("element %d: tensor field %q must be %dx%d", eid, key, ndim, ndim)
			}
		}
	case nodalKind:
		if len(o.Nodal) != nverts {
			chk.Panic("element %d: nodal field %q must have %d nodal vectors. %d is invalid", eid, key, nverts, len(o.Nodal))
		}
		for _, row := range o.Nodal {
			if len(row) != ndim {
				chk.Panic("element %d: nodal field %q must have vectors with %d components. %d is invalid", eid, key, ndim, len(row))
			}
		}
	}
}

// coef returns the time multiplier of this field
func (o *Field) coef(t float64) float64 {
	if o.Fcn == nil {
		return 1.0
	}
	return o.Fcn.F(t, nil)
}

// field evaluation /////////////////////////////////////////////////////////////////////////////////

// ScalarAt evaluates a scalar field at an integration point. A missing field
// evaluates to zero.
func (o *Element) ScalarAt(key FieldKey, ip *IntPoint, t float64) float64 {
	f, ok := o.Fields[key]
	if !ok {
		return 0
	}
	switch f.kind {
	case scalarKind:
		return f.Val * f.coef(t)
	case ipKind:
		return f.IpVals[ip.Idx] * f.coef(t)
	}
	chk.Panic("element %d: field %q is not scalar-valued", o.Id, key)
	return 0
}

// VectorAt evaluates a vector field at an integration point. Per-node vectors
// are interpolated with the basis values S; a missing field evaluates to zero.
//  Output:
//   v -- [ndim] value @ ip
func (o *Element) VectorAt(v []float64, key FieldKey, S []float64, t float64) {
	for i := range v {
		v[i] = 0
	}
	f, ok := o.Fields[key]
	if !ok {
		return
	}
	c := f.coef(t)
	switch f.kind {
	case vectorKind:
		for i := 0; i < o.Ndim; i++ {
			v[i] = c * f.Vec[i]
		}
	case nodalKind:
		for m := 0; m < o.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				v[i] += c * S[m] * f.Nodal[m][i]
			}
		}
	default:
		chk.Panic("element %d: field %q is not vector-valued", o.Id, key)
	}
}

// TensorAt evaluates a tensor field at an integration point. A missing field
// evaluates to the zero tensor.
//  Output:
//   M -- [ndim][ndim] value @ ip
func (o *Element) TensorAt(M [][]float64, key FieldKey, t float64) {
	for i := range M {
		for j := range M[i] {
			M[i][j] = 0
		}
	}
	f, ok := o.Fields[key]
	if !ok {
		return
	}
	if f.kind != tensorKind {
		chk.Panic("element %d: field %q is not tensor-valued", o.Id, key)
	}
	c := f.coef(t)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			M[i][j] = c * f.Ten[i][j]
		}
	}
}

// GradAt computes the spatial gradient of a per-node vector field at an
// integration point
//   gradv[i][j] = Σ_m Nodal[m][i] * G[m][j]
// Constant fields and missing fields have zero gradient.
//  Output:
//   gradv -- [ndim][ndim] gradient @ ip
func (o *Element) GradAt(gradv [][]float64, key FieldKey, G [][]float64, t float64) {
	for i := range gradv {
		for j := range gradv[i] {
			gradv[i][j] = 0
		}
	}
	f, ok := o.Fields[key]
	if !ok {
		return
	}
	if f.kind != nodalKind {
		return
	}
	c := f.coef(t)
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			for j := 0; j < o.Ndim; j++ {
				gradv[i][j] += c * f.Nodal[m][i] * G[m][j]
			}
		}
	}
}
