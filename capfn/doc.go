// Package capfn provides callable values whose captured state is declared
// explicitly and typed statically, instead of hidden inside a closure.
//
// A callable bundles a captured value C with a plain function that receives
// access to C plus the call arguments. There are three kinds:
//
//   - ReadN: the function gets a copy of C. Repeatable, and calling never
//     changes the callable itself.
//   - MutN: the function gets *C. Repeatable, and changes persist between
//     calls on the same value.
//   - OnceN: the function takes C by value. Callable exactly once; any further
//     use panics with ErrConsumed (TryCall reports it instead).
//
// N is the parameter count, from 0 to MaxArity. Capture nothing with Unit,
// a single value with its own type, and several with a tuple.TN or a struct.
//
// The function must not capture anything itself. Equality compares the
// captured state and the function's code pointer, so two closures built from
// the same literal over different variables would compare equal.
//
// Example:
//
//	addMul := capfn.NewRead2(3, func(coeff, a, b int) int {
//	    return (a + b) * coeff
//	})
//	addMul.Call(1, 2) // 9
//
//	counter := capfn.NewMut0(0, func(n *int) int {
//	    *n++
//	    return *n
//	})
//	counter.Call() // 1
//	counter.Call() // 2
//
// Read captures that hold maps, slices or pointers still share what they
// point to; implement Cloner on the captured type to deep copy on Clone.
//
// A ReadN may be shared by goroutines when C is safe to read concurrently.
// MutN calls must be serialized by the caller. For OnceN exactly one of
// several concurrent callers wins.
package capfn

//go:generate go run ../internal/gen -kind read -out read_gen.go
//go:generate go run ../internal/gen -kind mut -out mut_gen.go
//go:generate go run ../internal/gen -kind once -out once_gen.go
