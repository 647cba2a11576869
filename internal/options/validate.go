// Package options holds checks shared by the functional-option builders of
// the estree, walker and linter packages.
package options

import "errors"

// ExactlyOne returns nil when exactly one of set is true. With none set it
// fails with missing, with several set it fails with conflict. The builders
// pass one flag per With* input option.
func ExactlyOne(missing, conflict string, set ...bool) error {
	var n int
	for _, s := range set {
		if s {
			n++
		}
	}
	switch n {
	case 1:
		return nil
	case 0:
		return errors.New(missing)
	default:
		return errors.New(conflict)
	}
}
