// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/riddle-and-lyre/elast/ele"
	msolid "github.com/riddle-and-lyre/elast/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// mockShape implements ele.Shape with prescribed basis values and gradients
type mockShape struct {
	s []float64
	g [][]float64
	j float64
}

func (o *mockShape) CalcAtIp(ip *ele.IntPoint, time float64) (S []float64, G [][]float64, J float64, err error) {
	return o.s, o.g, o.j, nil
}

func Test_problem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem01. construction and defaults")

	// default dimensions per variant
	p3 := NewProblem(msolid.Generic3D, 0, nil)
	chk.IntAssert(p3.Ndim, 3)
	p2 := NewProblem(msolid.PlaneStress, 0, nil)
	chk.IntAssert(p2.Ndim, 2)

	// explicit dimension override
	p := NewProblem(msolid.Generic3D, 2, nil)
	chk.IntAssert(p.Ndim, 2)

	// element info
	shp := &mockShape{s: []float64{0.5, 0.5}, g: [][]float64{{0, 0}, {0, 0}}, j: 1}
	e := ele.NewElement(0, 2, 2, shp)
	p2.AddElement(e)
	chk.IntAssert(len(p2.Elems), 1)
	info := p2.ElemInfo(0)
	chk.IntAssert(len(info.Dofs), 2)
	for _, dofs := range info.Dofs {
		chk.Strings(tst, "u dofs", dofs, []string{"ux", "uy"})
	}
	chk.Strings(tst, "t2vars", info.T2vars, []string{"ux", "uy"})
}

func Test_problem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem02. residual dispatch")

	shp := &mockShape{
		s: []float64{0.5, 0.5},
		g: [][]float64{{1, 0}, {0, 1}},
		j: 1,
	}
	e := ele.NewElement(0, 2, 2, shp)
	e.SetSolidMaterial([]*dbf.P{
		&dbf.P{N: "E", V: 210000},
		&dbf.P{N: "nu", V: 0.3},
	})
	e.SetField(ele.Displacement, ele.NewNodalField([][]float64{
		{0.01, 0},
		{0, 0},
	}))

	p := NewProblem(msolid.PlaneStress, 0, []*ele.Element{e})
	ip := ele.NewIntPoint(0, []float64{0, 0}, 1)
	res, err := p.Residual(0, ip, 0)
	if err != nil {
		tst.Errorf("Residual failed: %v\n", err)
		return
	}

	// one-off entry point gives the same answer
	res2, err := Residual(msolid.PlaneStress, e, ip, 0, nil)
	if err != nil {
		tst.Errorf("Residual failed: %v\n", err)
		return
	}
	chk.Array(tst, "r (problem vs one-off)", 1e-17, res.Rvec, res2.Rvec)

	// variation through the problem
	dir := [][]float64{{0.01, 0}, {0, 0}}
	rv, err := p.ResidualVariation(0, ip, 0, dir)
	if err != nil {
		tst.Errorf("ResidualVariation failed: %v\n", err)
		return
	}
	rv2, err := Residual(msolid.PlaneStress, e, ip, 0, dir)
	if err != nil {
		tst.Errorf("Residual failed: %v\n", err)
		return
	}
	chk.Array(tst, "r (variation dispatch)", 1e-17, rv.Rvec, rv2.Rvec)
}

func Test_problem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem03. mismatched element dimension fails fast")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("panic should have been raised\n")
		}
	}()

	shp := &mockShape{s: []float64{1}, g: [][]float64{{0, 0, 0}}, j: 1}
	e := ele.NewElement(0, 3, 1, shp)
	p := NewProblem(msolid.PlaneStress, 0, nil)
	p.AddElement(e)
}
