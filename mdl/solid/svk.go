// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
)

// Lame converts Young's modulus and Poisson's ratio to the Lamé parameters
//
//           E                     E ν
//   μ = ─────────      λ = ────────────────
//       2 (1 + ν)          (1 + ν) (1 − 2ν)
//
func Lame(young, poisson float64) (lam, mu float64) {
	mu = young / (2.0 * (1.0 + poisson))
	lam = young * poisson / ((1.0 + poisson) * (1.0 - 2.0*poisson))
	return
}

// CheckPrms validates material parameters. The Lamé conversion is singular at
// ν = −1 and ν = 0.5; outside (−1, 0.5) the parameters are non-physical.
func CheckPrms(young, poisson float64) (err error) {
	if young <= 0 {
		return chk.Err("Young's modulus must be positive. E=%g is invalid", young)
	}
	if poisson <= -1.0 || poisson >= 0.5 {
		return chk.Err("Poisson's ratio must be within (-1, 0.5). nu=%g is invalid", poisson)
	}
	return
}

// Stress computes the second Piola–Kirchhoff stress of the
// Saint-Venant–Kirchhoff law
//
//   S = λ tr(E) I + 2 μ E
//
// with λ corrected according to the problem variant. An error is returned for
// material parameters outside the valid domain.
//  Output:
//   S -- [ndim][ndim] second Piola–Kirchhoff stress
func Stress(S, E [][]float64, young, poisson float64, variant Variant) (err error) {
	err = CheckPrms(young, poisson)
	if err != nil {
		return
	}
	lam, mu := Lame(young, poisson)
	lam = variant.CorrectLam(lam, mu)
	ndim := len(E)
	trE := 0.0
	for i := 0; i < ndim; i++ {
		trE += E[i][i]
	}
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			S[i][j] = 2.0 * mu * E[i][j]
		}
		S[i][i] += lam * trE
	}
	return
}

// Cauchy computes the Cauchy stress corresponding to a second Piola–Kirchhoff
// stress (diagnostic output; not required by the residual)
//
//   σ = F·S·Fᵀ / det(F)
//
//  Output:
//   T -- [ndim][ndim] Cauchy stress
//   J -- det(F)
func Cauchy(T, F, S [][]float64) (J float64, err error) {
	J = Det(F)
	if J <= 0 {
		return 0, chk.Err("cannot compute Cauchy stress: det(F)=%g is not positive", J)
	}
	ndim := len(F)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			s := 0.0
			for k := 0; k < ndim; k++ {
				for l := 0; l < ndim; l++ {
					s += F[i][k] * S[k][l] * F[j][l]
				}
			}
			T[i][j] = s / J
		}
	}
	return
}
