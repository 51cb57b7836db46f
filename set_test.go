package paramx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeAll(t *testing.T) {
	req := NewRequestContext("GET", "/search/{id}/{q}/{v}")

	t.Run("dispatches per method and preserves declaration order", func(t *testing.T) {
		params := []ParameterDescriptor{
			NewTyped("id", 42, "", false, MethodToString),
			NewTyped("q", "a b", "", true, MethodToString),
			NewTyped("v", 7, "", false, MethodSerialized),
		}
		rec := &RecordingSerializer{Result: "X"}

		pairs, err := SerializeAll(params, rec, req, Invariant())
		require.NoError(t, err)
		assert.Equal(t, []Pair{
			{Name: "id", Value: "42"},
			{Name: "q", Value: "a%20b"},
			{Name: "v", Value: "X"},
		}, pairs)
		assert.Equal(t, 1, rec.CallCount())
	})

	t.Run("collects failures per parameter and keeps the successes", func(t *testing.T) {
		params := []ParameterDescriptor{
			NewTyped("id", 42, "", false, MethodToString),
			NewTyped("filter", "x", "", false, MethodSerialized),
		}

		pairs, err := SerializeAll(params, nil, req, Invariant())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filter")
		assert.Equal(t, []Pair{{Name: "id", Value: "42"}}, pairs)
	})

	t.Run("empty parameter set", func(t *testing.T) {
		pairs, err := SerializeAll(nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})
}
