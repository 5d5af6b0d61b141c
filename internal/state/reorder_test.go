package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	cases := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 1, []string{"a", "c", "b", "d"}},
		{1, 1, []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		in := []string{"a", "b", "c", "d"}
		got := Move(in, tc.from, tc.to)
		assert.Equal(t, tc.want, got, "from=%d to=%d", tc.from, tc.to)
		assert.Equal(t, []string{"a", "b", "c", "d"}, in, "input must not change")
	}
}
