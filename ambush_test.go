package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdleSecondsSince(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		now      int64
		want     int
		wantErr  bool
	}{
		{name: "idle for a minute", activity: "1000", now: 1060, want: 60},
		{name: "trailing newline from tmux", activity: "1000\n", now: 1005, want: 5},
		{name: "clock skew clamps to zero", activity: "2000", now: 1990, want: 0},
		{name: "empty output", activity: "", wantErr: true},
		{name: "garbage output", activity: "not-a-timestamp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idleSecondsSince(tt.activity, tt.now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
