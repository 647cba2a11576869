package testutil

import (
	"path"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"golang.org/x/tools/txtar"
)

// Scenario is one lint case from a txtar archive. An archive holds any
// number of cases, each as a group of files under a common directory:
//
//	-- snake-write/code.js --
//	obj.snake_id = 3;
//	-- snake-write/options.json --
//	{"ignoreReadProperties": true}
//	-- snake-write/tree.yaml --
//	type: Program
//	...
//	-- snake-write/want --
//	snake_id
//
// code.js is documentation only. options.json is optional. want lists the
// expected diagnosed names one per line, empty for a valid case.
type Scenario struct {
	Name    string
	Code    string
	Options any
	Tree    []byte
	Want    []string
}

// LoadScenarios parses the txtar archive at file into scenarios sorted by name.
func LoadScenarios(t *testing.T, file string) []Scenario {
	t.Helper()

	ar, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("Failed to read scenario archive: %v", err)
	}

	byName := make(map[string]*Scenario)
	for _, f := range ar.Files {
		dir, base := path.Split(f.Name)
		name := strings.TrimSuffix(dir, "/")
		if name == "" {
			t.Fatalf("%s: scenario file %q is not in a case directory", file, f.Name)
		}
		sc := byName[name]
		if sc == nil {
			sc = &Scenario{Name: name}
			byName[name] = sc
		}
		switch base {
		case "code.js":
			sc.Code = strings.TrimSpace(string(f.Data))
		case "options.json":
			if err := json.Unmarshal(f.Data, &sc.Options); err != nil {
				t.Fatalf("%s: %s: %v", file, f.Name, err)
			}
		case "tree.yaml", "tree.json":
			sc.Tree = f.Data
		case "want":
			for _, line := range strings.Split(string(f.Data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					sc.Want = append(sc.Want, line)
				}
			}
		default:
			t.Fatalf("%s: unexpected scenario file %q", file, f.Name)
		}
	}

	names := make([]string, 0, len(byName))
	for name, sc := range byName {
		if sc.Tree == nil {
			t.Fatalf("%s: scenario %s has no tree", file, name)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	return out
}
