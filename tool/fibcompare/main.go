package main

import (
	"os"

	"github.com/LangOneOrg/langone-releases/bench"
)

// Terms above this are not computed recursively.
const maxRecursiveN = 35

var terms = []int{0, 1, 2, 3, 10, 20, 30, 35, 90, 92, 93, 1000}

func main() {
	bench.RenderTable(os.Stdout, bench.Compare(terms, maxRecursiveN))
}
