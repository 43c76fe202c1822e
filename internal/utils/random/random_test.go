package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource_Float64Range(t *testing.T) {
	src := NewSource()
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
