package c

var legacy_name = 1

var other_name = 2 // want `Identifier 'other_name' does not conform\.`

func f() {
	legacy_name = other_name // want `Identifier 'other_name' does not conform\.`
}
