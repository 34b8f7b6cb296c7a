package ranker_test

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/ddirect/cyclerank"
	"github.com/ddirect/cyclerank/ranker"
	"github.com/stretchr/testify/require"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

type move int

const (
	Rock move = iota
	Paper
	Scissors
	Lizard
	Spock
)

func (m move) String() string {
	return [...]string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}[m]
}

// hand cannot be compared with ==, so only identity lookup applies to it.
type hand struct {
	move  move
	moves []move
}

// winner takes copies of a and b, so it only works with value-based locators.
func winner[T any, L cyclerank.Locator[T]](t *testing.T, r *ranker.Ranker[T, L], a, b T) *T {
	t.Helper()
	w, err := r.Winner(&a, &b)
	require.NoError(t, err)
	return w
}
