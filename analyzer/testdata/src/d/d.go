package d

var snake_name = 1

func do_it() int { return snake_name }
