// Package tuple provides fixed-size heterogeneous values, used as the
// captured state of callables that capture more than one value.
package tuple

//go:generate go run ../internal/gen -kind tuple -out tuple_gen.go
