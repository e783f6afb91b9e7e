package numparse_test

import (
	"testing"

	"kwlab-go-backend/pkg/util/numparse"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
	}{
		{name: "plain number", input: float64(120), want: 120},
		{name: "int passthrough", input: 70, want: 70},
		{name: "numeric string", input: "340", want: 340},
		{name: "less-than prefix with space", input: "< 10", want: 10},
		{name: "less-than prefix without space", input: "<10", want: 10},
		{name: "thousands separator", input: "1,200", want: 1200},
		{name: "empty string", input: "", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "garbage", input: "n/a", want: 0},
		{name: "unexpected type", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, numparse.Count(tt.input))
		})
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{name: "plain number", input: 0.52, want: 0.52},
		{name: "percent suffix", input: "80%", want: 80},
		{name: "percent with space", input: " 1.25 % ", want: 1.25},
		{name: "numeric string", input: "3.4", want: 3.4},
		{name: "empty string", input: "", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "garbage", input: "-%", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numparse.Rate(tt.input)
			require.Equal(t, tt.want, got)
			require.False(t, got != got, "rate must never be NaN")
		})
	}
}
