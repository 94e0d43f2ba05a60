package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Second))
	assert.Equal(t, time.Second, ParseDuration("soon", time.Second))
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 2, 50},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressPercent(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}
