package fluent

// Apply calls f with v and returns its result.
//
// Example:
//
//	x := Apply(256, func(it int) int { return it * 2 }) // 512
func Apply[T, R any](v T, f func(T) R) R {
	return f(v)
}

// ApplyRef calls f with a pointer to its own copy of v and returns the result.
// The caller's variable is left untouched.
//
// Example:
//
//	n := ApplyRef([]int{1, 2, 3}, func(it *[]int) int { return len(*it) }) // 3
func ApplyRef[T, R any](v T, f func(*T) R) R {
	return f(&v)
}

// Also calls f with v for its side effect and returns v.
//
// Example:
//
//	x := Also(3, func(it int) { fmt.Println("hi!") }) // 3
func Also[T any](v T, f func(T)) T {
	f(v)
	return v
}

// AlsoMut lets f mutate v in place and returns the mutated value.
//
// Example:
//
//	m := AlsoMut(map[string]string{}, func(it *map[string]string) {
//		(*it)["hello"] = "world"
//	})
func AlsoMut[T any](v T, f func(*T)) T {
	f(&v)
	return v
}

// ApplyErr is Apply for functions returning (R, error). The error is
// returned as is.
func ApplyErr[T, R any](v T, f func(T) (R, error)) (R, error) {
	return f(v)
}

// AlsoErr is AlsoMut for functions that can fail. The value is returned
// together with the error, so partial mutations stay visible to the caller.
func AlsoErr[T any](v T, f func(*T) error) (T, error) {
	err := f(&v)
	return v, err
}
