// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// GLStrainKey is the auxiliary-state key under which callers persist the
// Green–Lagrange strain of an integration point
const GLStrainKey = "gl strain"

// StrainKeys returns the keys of the independent strain components
func StrainKeys(ndim int) []string {
	if ndim == 2 {
		return []string{"ex", "ey", "exy"}
	}
	return []string{"ex", "ey", "ez", "exy", "eyz", "ezx"}
}

// StrainVals extracts the independent components of a strain tensor in the
// order of StrainKeys
//  E -- [ndim][ndim] strain tensor
func StrainVals(E [][]float64) []float64 {
	if len(E) == 2 {
		return []float64{E[0][0], E[1][1], E[0][1]}
	}
	return []float64{E[0][0], E[1][1], E[2][2], E[0][1], E[1][2], E[2][0]}
}
