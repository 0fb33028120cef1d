package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/gaussmoat/bridge"
)

// ExamplePrimesToNormAsArray shows the interleaved layout.
func ExamplePrimesToNormAsArray() {
	arr, _ := bridge.PrimesToNormAsArray(10)
	fmt.Println(arr)

	// Output:
	// [1 1 1 2 2 1 3 0]
}
