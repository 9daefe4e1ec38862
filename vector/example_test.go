package vector_test

import (
	"fmt"

	"github.com/kwhuang/linalg/vector"
)

// ExampleVector_Norm measures the length of the classic 3-4-5 triangle.
func ExampleVector_Norm() {
	v := vector.New(3, 4)
	fmt.Println(v.Norm())

	// Output:
	// 5
}

// ExampleDot computes the inner product of two 3D vectors.
func ExampleDot() {
	d, _ := vector.Dot(vector.New(1, 2, 3), vector.New(4, 5, 6))
	fmt.Println(d)

	// Output:
	// 32
}

// ExampleCross shows the right-handed cross product of the x and y axes.
func ExampleCross() {
	z, _ := vector.Cross(vector.New(1, 0, 0), vector.New(0, 1, 0))
	fmt.Println(z)

	// Output:
	// (0, 0, 1)
}

// ExampleApply left-multiplies a vector by a 3×3 row grid.
func ExampleApply() {
	rows := [][]float64{{1, 2, 3}, {-1, 0, 1}, {3, 4, 5}}
	v, _ := vector.Apply(rows, vector.New(1, 2, 3))
	fmt.Println(v)

	// Output:
	// (14, 2, 26)
}

// ExampleVector_Argument reads a compass-style heading: the clockwise
// angle from the +y axis.
func ExampleVector_Argument() {
	east, _ := vector.New(1, 0).Argument()
	west, _ := vector.New(-1, 0).Argument()
	fmt.Println(east, west)

	// Output:
	// 90 270
}
