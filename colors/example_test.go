// SPDX-License-Identifier: EPL-2.0

package colors_test

import (
	"fmt"

	"github.com/ik5/waver/colors"
)

func ExampleParse() {
	c, err := colors.Parse("00ff99")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("R=%d G=%d B=%d A=%d\n", c.Red, c.Green, c.Blue, c.Alpha)

	short, _ := colors.Parse("f0a")
	fmt.Printf("R=%d G=%d B=%d A=%d\n", short.Red, short.Green, short.Blue, short.Alpha)

	// Output:
	// R=0 G=255 B=153 A=255
	// R=255 G=0 B=170 A=255
}
