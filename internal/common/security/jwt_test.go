package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/common"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManagerExpired(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), -time.Second)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestTokenManagerWrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenManagerMalformed(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := tm.Verify("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenManagerEmptySecret(t *testing.T) {
	tm := NewTokenManager(nil, time.Hour)

	t.Run("issue fails with config error", func(t *testing.T) {
		_, err := tm.Issue("user-123")
		assert.ErrorIs(t, err, common.ErrConfig)
	})

	t.Run("verify fails with config error", func(t *testing.T) {
		valid, err := NewTokenManager([]byte("s"), time.Hour).Issue("user-123")
		require.NoError(t, err)

		_, err = tm.Verify(valid)
		assert.ErrorIs(t, err, common.ErrConfig)
	})
}
