// Code generated by hand for tests. DO NOT EDIT.

package a

var gen_name = 1
