package fluent

// Chain wraps a value to allow method-style chaining of Also/AlsoMut steps
type Chain[T any] struct {
	value T
}

// Of starts a new chain from v
func Of[T any](v T) Chain[T] {
	return Chain[T]{value: v}
}

// Value returns the wrapped value
func (c Chain[T]) Value() T {
	return c.value
}

// Also runs a side effect with the wrapped value
func (c Chain[T]) Also(f func(T)) Chain[T] {
	return Chain[T]{value: Also(c.value, f)}
}

// AlsoMut mutates the wrapped value in place
func (c Chain[T]) AlsoMut(f func(*T)) Chain[T] {
	return Chain[T]{value: AlsoMut(c.value, f)}
}

// ApplyRef replaces the wrapped value with the result of f
func (c Chain[T]) ApplyRef(f func(*T) T) Chain[T] {
	return Chain[T]{value: ApplyRef(c.value, f)}
}

// Then chains a function that changes the value type.
// It is not a method since methods can't declare type parameters.
func Then[T, R any](c Chain[T], f func(T) R) Chain[R] {
	return Chain[R]{value: Apply(c.value, f)}
}
