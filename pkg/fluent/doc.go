// Package fluent provides generic helpers for chaining a transformation or a
// side effect onto a value inside a single expression, instead of splitting
// initialization into several statements.
//
// Operations:
// - Apply: pass the value to a function and return its result
// - ApplyRef: pass a pointer to a copy of the value and return the result
// - Also: run a side effect with the value and return the value unchanged
// - AlsoMut: mutate the value in place through a pointer and return it
// - ApplyErr/AlsoErr: the same for functions that may return an error
// - Of/Then: wrap a value in a Chain[T] for method-style chaining
//
// The helpers hold no state and never recover panics or wrap errors coming
// from the supplied function.
package fluent
