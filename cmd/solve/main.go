// cubesolve - two-phase cubie-level Rubik's cube solver.
package main

import (
	"github.com/lindqvist/cubesolve/internal/cli"
)

func main() {
	cli.Execute()
}
