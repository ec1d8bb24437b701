package exo_test

import (
	"fmt"
	"log"

	"github.com/c64tools/exo"
)

func ExampleDecode() {
	src := []byte{0x11, 0x21, 0x95, 0xb1, 0xb1, 0xbf, 0xc0}
	out, err := exo.Decode(src, 16)
	if err != nil {
		log.Fatalf("exo.Decode error %s", err)
	}
	fmt.Printf("%s\n", out)
	// Output:
	// Hello
}
