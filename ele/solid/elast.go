// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elements for elasticity problems
package solid

import (
	"github.com/riddle-and-lyre/elast/ele"
	msolid "github.com/riddle-and-lyre/elast/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Elast computes the weak-form residual of finite-strain elasticity for one
// element, at single integration points
//
//   r = F·S·G  −  b ⊗ S  −  t̄ ⊗ S
//
// with F the deformation gradient, S the second Piola–Kirchhoff stress, G the
// basis gradients, b the body load and t̄ the traction force. Each term is
// active iff the fields it needs are present on the element; absence silently
// deactivates the term. One Elast owns its scratchpad: invocations for
// different elements may run concurrently, invocations on the same instance
// must be serialized by the caller.
type Elast struct {

	// basic data
	Elem    *ele.Element   // the element
	Variant msolid.Variant // formulation variant (selects the Lamé correction)
	Ndim    int            // space dimension
	Nu      int            // total number of unknowns == ndim * nverts

	// scratchpad. computed @ each ip
	gradu [][]float64 // [ndim][ndim] displacement gradient @ ip
	F     [][]float64 // [ndim][ndim] deformation gradient
	E     [][]float64 // [ndim][ndim] Green–Lagrange strain
	S     [][]float64 // [ndim][ndim] second Piola–Kirchhoff stress
	T     [][]float64 // [ndim][ndim] Cauchy stress
	FS    [][]float64 // [ndim][ndim] F·S
	b     []float64   // [ndim] load vector @ ip
}

// Result holds the outcome of one residual evaluation. Rvec is node-major:
// the component of node m along direction i sits at index i + m*ndim,
// matching the basis-gradient layout. The tensors are set only when the
// internal-force term is active; T additionally requires det(F) > 0 and is
// nil otherwise. The assembler never persists them; callers
// wanting the strain stored at the integration point write it themselves:
//
//   ip.SetAux(GLStrainKey, res.E)
//
type Result struct {
	Rvec []float64   // [nu] residual vector
	F    [][]float64 // deformation gradient
	E    [][]float64 // Green–Lagrange strain
	S    [][]float64 // second Piola–Kirchhoff stress
	T    [][]float64 // Cauchy stress (diagnostic)
	J    float64     // det(F)
}

// New returns a new residual assembler for one element
func New(elem *ele.Element, variant msolid.Variant) *Elast {
	var o Elast
	o.Elem = elem
	o.Variant = variant
	o.Ndim = elem.Ndim
	o.Nu = o.Ndim * elem.Nverts
	o.gradu = utl.Alloc(o.Ndim, o.Ndim)
	o.F = utl.Alloc(o.Ndim, o.Ndim)
	o.E = utl.Alloc(o.Ndim, o.Ndim)
	o.S = utl.Alloc(o.Ndim, o.Ndim)
	o.T = utl.Alloc(o.Ndim, o.Ndim)
	o.FS = utl.Alloc(o.Ndim, o.Ndim)
	o.b = make([]float64, o.Ndim)
	return &o
}

// Residual computes the residual vector at one integration point
func (o *Elast) Residual(ip *ele.IntPoint, time float64) (res *Result, err error) {
	return o.residual(ip, time, nil)
}

// ResidualVariation computes the directional variation of the residual: the
// displacement field is replaced by the given direction, for linearization
// and virtual-work evaluations
//  Input:
//   direction -- [nverts][ndim] nodal vectors of the variation direction
func (o *Elast) ResidualVariation(ip *ele.IntPoint, time float64, direction [][]float64) (res *Result, err error) {
	if len(direction) != o.Elem.Nverts {
		chk.Panic("element %d: variation direction must have %d nodal vectors. %d is invalid", o.Elem.Id, o.Elem.Nverts, len(direction))
	}
	for _, row := range direction {
		if len(row) != o.Ndim {
			chk.Panic("element %d: variation direction must have vectors with %d components. %d is invalid", o.Elem.Id, o.Ndim, len(row))
		}
	}
	return o.residual(ip, time, direction)
}

// residual computes the residual with the displacement gradient taken either
// from the "displacement" field (direction == nil) or from direction
func (o *Elast) residual(ip *ele.IntPoint, time float64, direction [][]float64) (res *Result, err error) {

	// basis values and gradients @ ip
	Sb, G, _, err := o.Elem.Shp.CalcAtIp(ip, time)
	if err != nil {
		return nil, chk.Err("element %d: cannot compute basis functions @ ip %d: %v", o.Elem.Id, ip.Idx, err)
	}
	if len(Sb) != o.Elem.Nverts || len(G) != o.Elem.Nverts {
		chk.Panic("element %d: basis arrays do not match nverts=%d", o.Elem.Id, o.Elem.Nverts)
	}

	// displacement gradient @ ip
	if direction == nil {
		o.Elem.GradAt(o.gradu, ele.Displacement, G, time)
	} else {
		gradFromNodal(o.gradu, direction, G)
	}

	// new result
	res = &Result{Rvec: make([]float64, o.Nu)}

	// internal forces
	if o.Elem.HasField(ele.YoungsModulus) && o.Elem.HasField(ele.PoissonsRatio) {

		// kinematics and stress
		young := o.Elem.ScalarAt(ele.YoungsModulus, ip, time)
		poisson := o.Elem.ScalarAt(ele.PoissonsRatio, ip, time)
		msolid.Deformation(o.F, o.E, o.gradu)
		err = msolid.Stress(o.S, o.E, young, poisson, o.Variant)
		if err != nil {
			return nil, chk.Err("element %d: stress computation failed @ ip %d:\n%v", o.Elem.Id, ip.Idx, err)
		}

		// Cauchy stress is diagnostic only: a degenerate deformation (e.g. an
		// arbitrary variation direction with det(F) ≤ 0) skips σ but never
		// aborts the residual
		res.J = msolid.Det(o.F)
		if res.J > 0 {
			_, err = msolid.Cauchy(o.T, o.F, o.S)
			if err != nil {
				return nil, chk.Err("element %d: cannot compute Cauchy stress @ ip %d:\n%v", o.Elem.Id, ip.Idx, err)
			}
			res.T = utl.Clone(o.T)
		}

		// r += F·S·G
		for i := 0; i < o.Ndim; i++ {
			for j := 0; j < o.Ndim; j++ {
				s := 0.0
				for k := 0; k < o.Ndim; k++ {
					s += o.F[i][k] * o.S[k][j]
				}
				o.FS[i][j] = s
			}
		}
		for m := 0; m < o.Elem.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				r := i + m*o.Ndim
				for j := 0; j < o.Ndim; j++ {
					res.Rvec[r] += o.FS[i][j] * G[m][j] // fi
				}
			}
		}

		// tensors for the caller
		res.F = utl.Clone(o.F)
		res.E = utl.Clone(o.E)
		res.S = utl.Clone(o.S)
	}

	// body load
	if o.Elem.HasField(ele.DisplacementLoad) {
		o.Elem.VectorAt(o.b, ele.DisplacementLoad, Sb, time)
		for m := 0; m < o.Elem.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				res.Rvec[i+m*o.Ndim] -= o.b[i] * Sb[m] // -fe
			}
		}
	}

	// traction force
	if o.Elem.HasField(ele.TractionForce) {
		o.Elem.VectorAt(o.b, ele.TractionForce, Sb, time)
		for m := 0; m < o.Elem.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				res.Rvec[i+m*o.Ndim] -= o.b[i] * Sb[m] // -fe
			}
		}
	}
	return
}

// OutIpKeys returns the integration points' output keys
func (o *Elast) OutIpKeys() []string {
	return StrainKeys(o.Ndim)
}

// OutIpVals stores the strain components of a Result in M
func (o *Elast) OutIpVals(M *ele.IpsMap, idx, nip int, res *Result) {
	if res.E == nil {
		return
	}
	M.SetMany(StrainKeys(o.Ndim), idx, nip, StrainVals(res.E))
}

// gradFromNodal computes gradv[i][j] = Σ_m nodal[m][i] * G[m][j]
func gradFromNodal(gradv, nodal, G [][]float64) {
	for i := range gradv {
		for j := range gradv[i] {
			gradv[i][j] = 0
		}
	}
	for m := range nodal {
		for i := range nodal[m] {
			for j := range G[m] {
				gradv[i][j] += nodal[m][i] * G[m][j]
			}
		}
	}
}
