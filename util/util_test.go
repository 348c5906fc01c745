package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFormattedDuration(t *testing.T) {
	assert.Equal(t, "3:18", GetFormattedDuration(198973))
	assert.Equal(t, "0:05", GetFormattedDuration(5000))
	assert.Equal(t, "10:00", GetFormattedDuration(600000))
	assert.Equal(t, "0:00", GetFormattedDuration(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(2, 5, 50))
	assert.Equal(t, 50, Clamp(100, 5, 50))
	assert.Equal(t, 15, Clamp(15, 5, 50))
}
