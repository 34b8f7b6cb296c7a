package cyclerank

import "errors"

var (
	ErrInvalidSequenceLength = errors.New("sequence length must be odd")
	ErrItemNotFound          = errors.New("item is not in sequence")
	ErrDuplicateItem         = errors.New("duplicate item in sequence")
)

// Locator finds the position of item in s. The strategy defines what "same item" means.
type Locator[T any] interface {
	Locate(s []T, item *T) (int, bool)
}
