// Command fraction is an exact fraction calculator.
//
// Usage:
//
//	fraction parse "1 3/4"
//	fraction eval 1/3 + 1/6
//	fraction cmp 1/3 1/2
//	fraction fixed --scale 2 --mode half_even 1/8
package main

import (
	"fmt"
	"os"

	"github.com/govalues/fraction/cmd/fraction/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
