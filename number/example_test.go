package number_test

import (
	"fmt"

	"github.com/yyyoichi/convbit/number"
)

func ExampleNew() {
	n := number.New(48879)
	fmt.Println(n.Decimal)
	fmt.Println(n.Binary)
	fmt.Println(number.New(105))
	// Output:
	// 48879
	// 1011_1110_1110_1111
	// decimal: 105, binary: 0110_1001
}

func ExampleGroup() {
	// Grouping alone, without padding.
	fmt.Println(number.Group("101010"))
	// Output:
	// 10_1010
}
