// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// Deformation computes the deformation gradient and the Green–Lagrange strain
// from the displacement gradient
//
//   F = I + ∇u
//
//   E = ½ (Fᵀ·F − I)
//
// E is symmetric by construction and invariant under superposed rigid rotation.
//  Output:
//   F -- [ndim][ndim] deformation gradient
//   E -- [ndim][ndim] Green–Lagrange strain
func Deformation(F, E, gradu [][]float64) {
	ndim := len(gradu)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			F[i][j] = gradu[i][j]
		}
		F[i][i] += 1.0
	}
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			s := 0.0
			for k := 0; k < ndim; k++ {
				s += F[k][i] * F[k][j]
			}
			E[i][j] = s / 2.0
		}
		E[i][i] -= 0.5
	}
}

// Det returns the determinant of a 2x2 or 3x3 tensor
func Det(F [][]float64) float64 {
	if len(F) == 2 {
		return F[0][0]*F[1][1] - F[0][1]*F[1][0]
	}
	return F[0][0]*(F[1][1]*F[2][2]-F[1][2]*F[2][1]) -
		F[0][1]*(F[1][0]*F[2][2]-F[1][2]*F[2][0]) +
		F[0][2]*(F[1][0]*F[2][1]-F[1][1]*F[2][0])
}
