package a

import (
	str_util "strings"
)

var snake_var = 1 // want `Identifier 'snake_var' does not conform\.`

const MAX_SIZE = 10

var camelVar = str_util.ToUpper("x") // want `Identifier 'str_util' does not conform\.`

var _private_ = 2

type point struct {
	x_pos int // want `Identifier 'x_pos' does not conform\.`
	y     int
}

func use_thing(in_arg int) int { // want `Identifier 'use_thing' does not conform\.` `Identifier 'in_arg' does not conform\.`
	return in_arg // want `Identifier 'in_arg' does not conform\.`
}

func calls() {
	p := point{x_pos: 1, y: 2} // want `Identifier 'x_pos' does not conform\.`
	_ = p.x_pos
	p.x_pos = 3 // want `Identifier 'x_pos' does not conform\.`
	_ = use_thing(MAX_SIZE)
	_, _ = snake_var, camelVar // want `Identifier 'snake_var' does not conform\.`
	_ = _private_
}
