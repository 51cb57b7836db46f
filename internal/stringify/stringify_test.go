package stringify

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fmtProvider struct{}

func (fmtProvider) Sprintf(format string, args ...any) string { return fmt.Sprintf(format, args...) }
func (fmtProvider) Sprint(arg any) string                     { return fmt.Sprint(arg) }

type stringered struct{}

func (stringered) String() string { return "stringered" }

type marshaled struct{ fail bool }

func (m marshaled) MarshalText() ([]byte, error) {
	if m.fail {
		return nil, errors.New("marshal text failed")
	}
	return []byte("marshaled"), nil
}

type label string

func TestStringify(t *testing.T) {
	date := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	three := 3

	tests := []struct {
		name     string
		value    any
		format   string
		expected string
	}{
		{"nil interface", nil, "", ""},
		{"nil pointer", (*int)(nil), "", ""},
		{"string", "alpha", "", "alpha"},
		{"named string kind", label("beta"), "", "beta"},
		{"bool", true, "", "true"},
		{"int", 42, "", "42"},
		{"negative int", -7, "", "-7"},
		{"uint", uint16(9), "", "9"},
		{"float32", float32(2.5), "", "2.5"},
		{"float64", 3.25, "", "3.25"},
		{"pointer dereferenced", &three, "", "3"},
		{"time without format is RFC 3339", date, "", "2024-03-09T15:04:05Z"},
		{"time with layout", date, "2006-01-02", "2024-03-09"},
		{"verb format", 255, "%x", "ff"},
		{"verb format on float", 2.5, "%.2f", "2.50"},
		{"non-verb format on int falls back", 42, "X", "42"},
		{"stringer", stringered{}, "", "stringered"},
		{"text marshaler", marshaled{}, "", "marshaled"},
		{"byte slice", []byte("raw"), "", "raw"},
		{"int slice as JSON", []int{1, 2, 3}, "", "[1,2,3]"},
		{"map as JSON", map[string]int{"a": 1}, "", `{"a":1}`},
		{"struct as JSON", struct {
			A int `json:"a"`
		}{A: 1}, "", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Stringify(tt.value, tt.format, fmtProvider{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("channel is unsupported", func(t *testing.T) {
		_, err := Stringify(make(chan int), "", fmtProvider{})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("text marshaler failure propagates", func(t *testing.T) {
		_, err := Stringify(marshaled{fail: true}, "", fmtProvider{})
		assert.ErrorContains(t, err, "marshal text failed")
	})

	t.Run("determinism", func(t *testing.T) {
		first, err := Stringify(date, "2006-01-02", fmtProvider{})
		require.NoError(t, err)
		second, err := Stringify(date, "2006-01-02", fmtProvider{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
