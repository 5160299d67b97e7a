package flag_test

import (
	"fmt"

	"github.com/matzehuels/asciiflag/pkg/flag"
)

func ExampleRender() {
	out, err := flag.Render(4, flag.DefaultCharacters())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// ##############
	// #            #
	// #            #
	// #     **     #
	// #    *00*    #
	// #    *00*    #
	// #     **     #
	// #            #
	// #            #
	// ##############
}

func ExampleRender_invalidSize() {
	_, err := flag.Render(3, flag.DefaultCharacters())
	fmt.Println(err)
	// Output:
	// INVALID_ARGUMENT: The input argument "n" is not even integer number.
}

func ExampleParseCharacters() {
	chars, err := flag.ParseCharacters("=.o@")
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := flag.Render(2, chars)
	fmt.Print(out)
	// Output:
	// ========
	// =......=
	// =..oo..=
	// =..oo..=
	// =......=
	// ========
}

func ExampleComputeDimensions() {
	d := flag.ComputeDimensions(2)
	fmt.Println("border:", d.BorderWidth, "x", d.BorderHeight)
	fmt.Println("circle starts at row", d.CircleStartRow, "span", d.Circle.Left, d.Circle.Right)
	// Output:
	// border: 8 x 6
	// circle starts at row 2 span 3 4
}
