// SPDX-License-Identifier: MIT

package lup_test

import (
	"fmt"

	"github.com/katalvlaran/densolve/lup"
	"github.com/katalvlaran/densolve/matrix"
)

// ExampleSystem_Solve solves a small 2×2 system.
func ExampleSystem_Solve() {
	a, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	b := matrix.ColVector([]float64{3, 5})

	sys, err := lup.NewSystem(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	x, err := sys.Solve()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x0, _ := matrix.VecAt(x, 0)
	x1, _ := matrix.VecAt(x, 1)
	fmt.Printf("x = (%.1f, %.1f)\n", x0, x1)
	// Output:
	// x = (0.8, 1.4)
}

// ExampleSystem_Decompose shows the P·A = L·U factors of a pivoted system.
func ExampleSystem_Decompose() {
	a, _ := matrix.FromRows([][]float64{
		{0, 2},
		{4, 1},
	})
	sys, _ := lup.NewSystem(a, matrix.ColVector([]float64{1, 1}))

	_, u, perm, err := sys.Decompose()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("perm:", perm)
	fmt.Print(u)
	// Output:
	// perm: [1 0]
	// [4, 1]
	// [0, 2]
}
