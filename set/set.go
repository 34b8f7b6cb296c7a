package set

type Set[T comparable] map[T]struct{}

func New[T comparable](sizeHint int) Set[T] {
	return Set[T](make(map[T]struct{}, sizeHint))
}

// Add inserts t and reports whether it was not already present.
func (s Set[T]) Add(t T) bool {
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

func (s Set[T]) Has(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}
