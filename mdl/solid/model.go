// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements the finite-strain kinematics and the
// Saint-Venant–Kirchhoff constitutive law for elasticity problems
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Variant distinguishes the full 3D elasticity formulation from the
// plane-stress reduction. The variant is selected once, at
// problem-construction time.
type Variant int

// problem variants
const (
	Generic3D Variant = iota
	PlaneStress
)

// String returns the name of this variant
func (o Variant) String() string {
	switch o {
	case Generic3D:
		return "3D"
	case PlaneStress:
		return "plane-stress"
	}
	return io.Sf("unknown(%d)", int(o))
}

// DefaultNdim returns the default space dimension of this variant
func (o Variant) DefaultNdim() int {
	if o == PlaneStress {
		return 2
	}
	return 3
}

// lamCorrection maps each variant to its Lamé-parameter correction rule.
// Generic3D keeps λ unmodified; PlaneStress applies the standard reduction
// assuming zero through-thickness stress.
var lamCorrection = map[Variant]func(lam, mu float64) float64{
	Generic3D:   func(lam, mu float64) float64 { return lam },
	PlaneStress: func(lam, mu float64) float64 { return 2.0 * lam * mu / (lam + 2.0*mu) },
}

// CorrectLam applies the Lamé-parameter correction rule of this variant
func (o Variant) CorrectLam(lam, mu float64) float64 {
	correct, ok := lamCorrection[o]
	if !ok {
		chk.Panic("problem variant %q is not available", o)
	}
	return correct(lam, mu)
}
