package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Sign("64f0c1d2e3a4b5c6d7e8f901")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, expired, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c1d2e3a4b5c6d7e8f901", userID)
	assert.False(t, expired)
}

func TestParse_ExpiredTokenStillYieldsUserID(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Sign("64f0c1d2e3a4b5c6d7e8f901")
	require.NoError(t, err)

	userID, expired, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c1d2e3a4b5c6d7e8f901", userID)
	assert.True(t, expired)
}

func TestParse_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := other.Sign("64f0c1d2e3a4b5c6d7e8f901")
	require.NoError(t, err)

	_, _, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, _, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
