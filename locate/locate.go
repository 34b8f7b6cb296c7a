// Package locate provides the strategies used by a ranker to find an item in its sequence.
package locate

// Identity matches only the storage slot itself: item must point into s.
// A copy of an element, even an equal one, is not found.
type Identity[T any] struct{}

func (Identity[T]) Locate(s []T, item *T) (int, bool) {
	if item == nil {
		return 0, false
	}
	for i := range s {
		if &s[i] == item {
			return i, true
		}
	}
	return 0, false
}

// Equal matches the first element equal to *item.
type Equal[T comparable] struct{}

func (Equal[T]) Locate(s []T, item *T) (int, bool) {
	if item == nil {
		return 0, false
	}
	for i, v := range s {
		if v == *item {
			return i, true
		}
	}
	return 0, false
}

// Func matches the first element for which the function reports equality with *item.
// It is meant for types whose equality is a method, e.g. time.Time.Equal.
type Func[T any] func(a, b T) bool

func (f Func[T]) Locate(s []T, item *T) (int, bool) {
	if item == nil {
		return 0, false
	}
	for i := range s {
		if f(s[i], *item) {
			return i, true
		}
	}
	return 0, false
}
