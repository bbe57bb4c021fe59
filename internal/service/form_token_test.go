package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTokenService_IssueAndVerify(t *testing.T) {
	s := NewFormTokenService("secret")

	token, err := s.Issue()
	require.NoError(t, err)

	sessionID, err := s.Verify(token)
	require.NoError(t, err)
	assert.Len(t, sessionID, 36)
}

func TestFormTokenService_UniqueSessions(t *testing.T) {
	s := NewFormTokenService("secret")

	first, err := s.Issue()
	require.NoError(t, err)
	second, err := s.Issue()
	require.NoError(t, err)

	firstID, err := s.Verify(first)
	require.NoError(t, err)
	secondID, err := s.Verify(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
}

func TestFormTokenService_Verify_Invalid(t *testing.T) {
	issuer := NewFormTokenService("secret")
	token, err := issuer.Issue()
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewFormTokenService("other").Verify(token)
		assert.ErrorIs(t, err, ErrInvalidFormToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidFormToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := issuer.Verify("")
		assert.ErrorIs(t, err, ErrInvalidFormToken)
	})

	t.Run("expired", func(t *testing.T) {
		verifier := NewFormTokenService("secret")
		verifier.now = func() time.Time { return time.Now().Add(FormTokenTTL + time.Hour) }

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidFormToken)
	})
}
