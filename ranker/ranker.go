// Package ranker decides the winner between two items of an odd-length cyclic
// sequence, generalizing rock-paper-scissors to any odd number of items.
//
// Every item loses to the (n-1)/2 items following it in the sequence and beats
// the (n-1)/2 items preceding it, wrapping around at the ends.
package ranker

import (
	"fmt"
	"iter"

	"github.com/ddirect/cyclerank"
	"github.com/ddirect/cyclerank/internal/cyclic"
	"github.com/ddirect/cyclerank/locate"
)

// Ranker holds a read-only view of the caller's sequence. The sequence must not be
// modified while the ranker is in use. Methods are safe for concurrent use.
type Ranker[T any, L cyclerank.Locator[T]] struct {
	s   []T
	n   int
	p   int
	loc L
}

// New creates a ranker matching items by identity: the pointers passed to its
// methods must address elements of s, such as &s[i] or those yielded by Values.
func New[T any](s []T) (*Ranker[T, locate.Identity[T]], error) {
	return NewWithLocator(s, locate.Identity[T]{})
}

// NewComparable creates a ranker matching items by value.
func NewComparable[T comparable](s []T) (*Ranker[T, locate.Equal[T]], error) {
	return NewWithLocator(s, locate.Equal[T]{})
}

// NewFunc creates a ranker matching items with eq.
func NewFunc[T any](s []T, eq func(a, b T) bool) (*Ranker[T, locate.Func[T]], error) {
	if eq == nil {
		panic(fmt.Errorf("cyclerank: nil equality function"))
	}
	return NewWithLocator(s, locate.Func[T](eq))
}

func NewWithLocator[T any, L cyclerank.Locator[T]](s []T, loc L) (*Ranker[T, L], error) {
	n := len(s)
	if n%2 == 0 {
		return nil, fmt.Errorf("cyclerank: length %d: %w", n, cyclerank.ErrInvalidSequenceLength)
	}
	return &Ranker[T, L]{
		s:   s,
		n:   n,
		p:   cyclic.Pivot(n),
		loc: loc,
	}, nil
}

func (r *Ranker[T, L]) Len() int {
	return r.n
}

// Pivot is the number of items each item beats.
func (r *Ranker[T, L]) Pivot() int {
	return r.p
}

func (r *Ranker[T, L]) Index(item *T) (int, bool) {
	return r.loc.Locate(r.s, item)
}

// Values yields pointers to the elements of the sequence, in order.
func (r *Ranker[T, L]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range r.s {
			if !yield(&r.s[i]) {
				return
			}
		}
	}
}

// Winner returns the winning argument, a or b, or nil if both are the same item.
func (r *Ranker[T, L]) Winner(a, b *T) (*T, error) {
	switch o, err := r.outcome(a, b); {
	case err != nil:
		return nil, err
	case o == cyclic.FirstWins:
		return a, nil
	case o == cyclic.SecondWins:
		return b, nil
	default:
		return nil, nil
	}
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 if they are the same item.
func (r *Ranker[T, L]) Compare(a, b *T) (int, error) {
	switch o, err := r.outcome(a, b); {
	case err != nil:
		return 0, err
	case o == cyclic.FirstWins:
		return 1, nil
	case o == cyclic.SecondWins:
		return -1, nil
	default:
		return 0, nil
	}
}

// Beats yields pointers to the items beaten by item, nearest first.
func (r *Ranker[T, L]) Beats(item *T) (iter.Seq[*T], error) {
	x, err := r.index("item", item)
	if err != nil {
		return nil, err
	}
	return func(yield func(*T) bool) {
		for i := 1; i <= r.p; i++ {
			if !yield(&r.s[cyclic.Beaten(x, i, r.n)]) {
				return
			}
		}
	}, nil
}

func (r *Ranker[T, L]) outcome(a, b *T) (cyclic.Outcome, error) {
	x, err := r.index("first item", a)
	if err != nil {
		return cyclic.Draw, err
	}
	y, err := r.index("second item", b)
	if err != nil {
		return cyclic.Draw, err
	}
	return cyclic.Winner(x, y, r.n, r.p), nil
}

func (r *Ranker[T, L]) index(what string, item *T) (int, error) {
	i, ok := r.loc.Locate(r.s, item)
	if !ok {
		return 0, fmt.Errorf("cyclerank: %s: %w", what, cyclerank.ErrItemNotFound)
	}
	return i, nil
}
