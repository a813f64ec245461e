package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomID(t *testing.T) {
	id, err := NewRoomID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	for _, c := range id {
		assert.Contains(t, base62Charset, string(c))
	}
}

func TestNewReservationID(t *testing.T) {
	id, err := NewReservationID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
	for _, c := range id {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestRandomStringHonorsCharset(t *testing.T) {
	s, err := RandomString(32, "ab")
	require.NoError(t, err)
	assert.Len(t, s, 32)
	for _, c := range s {
		assert.Contains(t, "ab", string(c))
	}
}
