// SPDX-License-Identifier: MIT

// Command lvsort runs the sorting algorithms and tree traversals of this
// module on values given on the command line.
//
//	lvsort list
//	lvsort sort --algo quick --values 38,29,14,-1
//	lvsort tree --order post --strategy iterative
//	lvsort bench --algo heap --n 1000000
package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp()

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
		os.Exit(1)
	}
}
