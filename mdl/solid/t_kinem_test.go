// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_kinem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kinem01. zero displacement gradient")

	for _, ndim := range []int{2, 3} {
		gradu := utl.Alloc(ndim, ndim)
		F := utl.Alloc(ndim, ndim)
		E := utl.Alloc(ndim, ndim)
		Deformation(F, E, gradu)
		I := utl.Alloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			I[i][i] = 1
		}
		chk.Deep2(tst, io.Sf("%dD: F", ndim), 1e-17, F, I)
		chk.Deep2(tst, io.Sf("%dD: E", ndim), 1e-17, E, utl.Alloc(ndim, ndim))
		chk.Float64(tst, io.Sf("%dD: det(F)", ndim), 1e-17, Det(F), 1.0)
	}
}

func Test_kinem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kinem02. rigid rotation gives zero strain")

	// 2D: rotation by 30 degrees
	θ := 30.0 * math.Pi / 180.0
	c, s := math.Cos(θ), math.Sin(θ)
	gradu := [][]float64{
		{c - 1, -s},
		{s, c - 1},
	}
	F := utl.Alloc(2, 2)
	E := utl.Alloc(2, 2)
	Deformation(F, E, gradu)
	chk.Deep2(tst, "2D: E", 1e-15, E, [][]float64{{0, 0}, {0, 0}})
	chk.Float64(tst, "2D: det(F)", 1e-15, Det(F), 1.0)

	// 3D: rotation by 30 degrees about z
	gradu3 := [][]float64{
		{c - 1, -s, 0},
		{s, c - 1, 0},
		{0, 0, 0},
	}
	F3 := utl.Alloc(3, 3)
	E3 := utl.Alloc(3, 3)
	Deformation(F3, E3, gradu3)
	chk.Deep2(tst, "3D: E", 1e-15, E3, utl.Alloc(3, 3))
	chk.Float64(tst, "3D: det(F)", 1e-15, Det(F3), 1.0)
}

func Test_kinem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kinem03. uniaxial stretch. closed form")

	// F = [[1.01,0],[0,1]]  =>  E00 = (1.01² − 1)/2 = 0.01005
	gradu := [][]float64{
		{0.01, 0},
		{0, 0},
	}
	F := utl.Alloc(2, 2)
	E := utl.Alloc(2, 2)
	Deformation(F, E, gradu)
	chk.Deep2(tst, "F", 1e-15, F, [][]float64{{1.01, 0}, {0, 1}})
	chk.Deep2(tst, "E", 1e-9, E, [][]float64{{0.01005, 0}, {0, 0}})
	chk.Float64(tst, "E symmetry", 1e-17, E[0][1], E[1][0])
	chk.Float64(tst, "det(F)", 1e-15, Det(F), 1.01)
}
