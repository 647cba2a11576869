// Command affixedids-vet reports Go identifiers that do not conform to the
// affixed-ids style.
//
// Usage:
//
//	affixedids-vet [-config .idstyle.yaml] [-prefixes opt_] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/pabigot/idstyle/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
