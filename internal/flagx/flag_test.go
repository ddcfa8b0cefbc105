package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://x", "-z", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.yaml", "-other=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.yaml"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-debug", "-a", "http://x"},
			allowed: []string{"-debug"},
			want:    []string{"-debug"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "http://x"},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
