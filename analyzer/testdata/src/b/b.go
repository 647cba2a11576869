package b

var opt_fooBar = 1

var xopt_bar = 2 // want `Identifier 'xopt_bar' does not conform\.`

var anyThing_value = 3

func do_it(n int) int { // want `Identifier 'do_it' does not conform\.`
	return n
}

func run() {
	do_it(opt_fooBar) // want `Identifier 'do_it' does not conform\.`
	_ = anyThing_value + xopt_bar // want `Identifier 'xopt_bar' does not conform\.`
}
