// Package testutil provides shared test utilities for the chess-rules-go project.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs...))
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs...))
	}
}

// sortMoves orders moves by their coordinate text so move sets compare
// regardless of generation order.
var sortMoves = cmpopts.SortSlices(func(a, b chess.Move) bool {
	return a.String() < b.String()
})

// AssertSameMoves fails unless got and want hold the same moves in any order.
// The diff is reported in coordinate notation.
func AssertSameMoves(t testing.TB, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(MoveStrings(want), MoveStrings(got), cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%smove set mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// MovesEqual reports whether two move lists hold the same moves in any order.
func MovesEqual(a, b []chess.Move) bool {
	return cmp.Equal(a, b, sortMoves, cmpopts.EquateEmpty())
}

// AssertHasMove fails unless moves contains m.
func AssertHasMove(t testing.TB, moves []chess.Move, m chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	for _, got := range moves {
		if got == m {
			return
		}
	}
	t.Errorf("%s%v not among %v", prefix(msgAndArgs...), m, MoveStrings(moves))
}

// AssertNoMove fails if moves contains m.
func AssertNoMove(t testing.TB, moves []chess.Move, m chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	for _, got := range moves {
		if got == m {
			t.Errorf("%s%v should not be generated", prefix(msgAndArgs...), m)
			return
		}
	}
}

// MoveStrings returns the coordinate text of each move.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// prefix formats optional message arguments as "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		return ""
	}
	return msg + ": "
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
