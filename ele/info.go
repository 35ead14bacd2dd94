// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds the DOF layout of an element, for assembly-loop collaborators
type Info struct {

	// essential
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy"], ["ux", "uy"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx"

	// t2 variables (second-order time derivatives)
	T2vars []string // "ux", "uy"
}

// NewUInfo returns the Info of a displacement-based element
func NewUInfo(ndim, nverts int) *Info {

	// new info
	var info Info

	// solution variables
	ykeys := []string{"ux", "uy"}
	if ndim == 3 {
		ykeys = []string{"ux", "uy", "uz"}
	}
	info.Dofs = make([][]string, nverts)
	for m := 0; m < nverts; m++ {
		info.Dofs[m] = ykeys
	}

	// maps
	info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}

	// t2 variables
	info.T2vars = ykeys
	return &info
}
