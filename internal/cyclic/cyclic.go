package cyclic

import "fmt"

// Pivot returns how many positions each position beats in a ring of length n.
func Pivot(n int) int {
	if n <= 0 || n%2 == 0 {
		panic(fmt.Errorf("cyclic: invalid ring length %d", n))
	}
	return (n - 1) / 2
}

// Outcome of a match between the positions x and y.
type Outcome int

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// Winner decides between positions x and y of a ring of length n where each
// position loses to the next p ones and beats the previous p. x and y must be in [0, n).
func Winner(x, y, n, p int) Outcome {
	for i := 1; i <= p; i++ {
		if (x+i)%n == y {
			return SecondWins
		} else if (y+i)%n == x {
			return FirstWins
		}
	}
	return Draw
}

// Beaten returns the i-th position (1 <= i <= p) beaten by x, walking backwards.
func Beaten(x, i, n int) int {
	return (x - i%n + n) % n
}
