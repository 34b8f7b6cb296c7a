package ranker

import (
	"fmt"

	"github.com/ddirect/cyclerank"
	"github.com/ddirect/cyclerank/set"
)

// CheckDistinct reports the first element of s that repeats an earlier one.
// The constructors do not call it: a sequence with repeated items still ranks,
// but a repeated item always resolves to its first position.
func CheckDistinct[T comparable](s []T) error {
	seen := set.New[T](len(s))
	for i, v := range s {
		if !seen.Add(v) {
			return fmt.Errorf("cyclerank: index %d (%v): %w", i, v, cyclerank.ErrDuplicateItem)
		}
	}
	return nil
}
