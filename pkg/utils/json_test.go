package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	Row int
	Col int
}

func TestUnmarshalJson(t *testing.T) {
	t.Run("generic map", func(t *testing.T) {
		got, err := UnmarshalJson[point](map[string]any{"Row": 2.0, "Col": 5.0})
		require.NoError(t, err)
		require.Equal(t, point{Row: 2, Col: 5}, got)
	})
	t.Run("already typed", func(t *testing.T) {
		got, err := UnmarshalJson[point](point{Row: 1, Col: 1})
		require.NoError(t, err)
		require.Equal(t, point{Row: 1, Col: 1}, got)
	})
	t.Run("type mismatch", func(t *testing.T) {
		_, err := UnmarshalJson[point](map[string]any{"Row": "north"})
		require.Error(t, err)
	})
	t.Run("unsupported value", func(t *testing.T) {
		_, err := UnmarshalJson[point](make(chan int))
		require.Error(t, err)
	})
}
