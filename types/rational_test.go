package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRationalFromString(t *testing.T) {
	tests := []struct {
		input          string
		expectedNum    int
		expectedDen    int
		expectingError bool
	}{
		{"16/9", 16, 9, false},
		{"4:3", 4, 3, false},
		{" 30 ", 30, 1, false},
		{"0/1", 0, 1, false},
		{"1/0", 0, 0, true},
		{"", 0, 0, true},
		{"invalid", 0, 0, true},
		{"10/invalid", 0, 0, true},
	}

	for _, test := range tests {
		rational, err := RationalFromString(test.input)
		if test.expectingError {
			if err == nil {
				t.Errorf("Expected error for input %q, but got none", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
			continue
		}
		if rational.Num != test.expectedNum || rational.Den != test.expectedDen {
			t.Errorf("For input %q, expected (%d/%d), but got (%d/%d)", test.input, test.expectedNum, test.expectedDen, rational.Num, rational.Den)
		}
	}
}

func TestRationalReduce(t *testing.T) {
	t.Parallel()

	require.Equal(t, Rational{Num: 4, Den: 3}, Rational{Num: 720, Den: 540}.Reduce())
	require.Equal(t, Rational{Num: -1, Den: 2}, Rational{Num: 2, Den: -4}.Reduce())
	require.Equal(t, Rational{Num: 5, Den: 0}, Rational{Num: 5, Den: 0}.Reduce())
	require.True(t, Rational{Num: 2, Den: 4}.Equal(Rational{Num: 1, Den: 2}))
	require.False(t, Rational{Num: 0, Den: 1}.IsValid())
}
