package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2026-06-15T08:00:00Z",
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2026-06-15T08:00:00+04:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("Tokyo")
		require.NotNil(t, strVal)
		assert.Equal(t, "Tokyo", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(700.0)
		require.NotNil(t, floatVal)
		assert.Equal(t, 700.0, *floatVal)
	})
}

func TestFloatPtr(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "typical fare", value: 980.0},
		{name: "zero", value: 0.0},
		{name: "negative", value: -500.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := FloatPtr(tt.value)
			require.NotNil(t, ptr)
			assert.Equal(t, tt.value, *ptr)
		})
	}
}

func TestIntPtr(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{name: "positive", value: 2},
		{name: "zero", value: 0},
		{name: "negative", value: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := IntPtr(tt.value)
			require.NotNil(t, ptr)
			assert.Equal(t, tt.value, *ptr)
		})
	}
}

func TestStringSlice(t *testing.T) {
	slice := StringSlice("Istanbul", "Doha")
	assert.Len(t, slice, 2)
	assert.Contains(t, slice, "Istanbul")
	assert.Contains(t, slice, "Doha")

	assert.Empty(t, StringSlice())
}

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "flights.json")
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "flight_id")
}
