package layoutfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"int", 8, 8, true},
		{"int64", int64(-3), -3, true},
		{"uint8", uint8(7), 7, true},
		{"float32", float32(0.5), 0.5, true},
		{"float64", 2.25, 2.25, true},
		{"bool", true, 0, false},
		{"numeric string", "5", 0, false},
		{"nil", nil, 0, false},
		{"slice", []any{1, 2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatorNumber(t *testing.T) {
	e, err := newEvaluator(map[string]any{"margin": 8})
	require.NoError(t, err)

	for raw, want := range map[any]float32{
		nil:          0,
		"":           0,
		"  12 ":      12,
		"margin * 2": 16,
		"1/4":        0.25,
		uint16(3):    3,
	} {
		got, err := e.number(raw)
		require.NoError(t, err, "%v", raw)
		assert.Equal(t, want, got, "%v", raw)
	}

	_, err = e.number(false)
	assert.ErrorIs(t, err, ErrNotNumeric)
	_, err = e.number("margin > 2")
	assert.ErrorIs(t, err, ErrNotNumeric)
}
