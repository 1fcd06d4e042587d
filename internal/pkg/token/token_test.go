package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	tok, expiresAt, err := issuer.Issue("session-1", time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Second)

	sid, err := issuer.SessionID(tok)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sid)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		tok, _, err := NewIssuer("other", time.Hour).Issue("session-1", time.Now())
		require.NoError(t, err)

		_, err = issuer.SessionID(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, _, err := issuer.Issue("session-1", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = issuer.SessionID(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.SessionID("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
