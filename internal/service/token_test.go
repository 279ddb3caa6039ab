package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager(t *testing.T) {
	_, err := NewTokenManager("", "HS256", time.Minute)
	require.Error(t, err)

	_, err = NewTokenManager("s", "RS256", time.Minute)
	require.Error(t, err)

	_, err = NewTokenManager("s", "HS256", 0)
	require.Error(t, err)

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		tm, err := NewTokenManager("s", alg, time.Minute)
		require.NoError(t, err)
		require.Equal(t, time.Minute, tm.TTL())
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	before := time.Now()
	tok, exp, err := tm.Issue("a@x.io", 0)
	require.NoError(t, err)
	require.WithinDuration(t, before.Add(30*time.Minute), exp, 2*time.Second)

	sub, err := tm.Resolve(tok)
	require.NoError(t, err)
	require.Equal(t, "a@x.io", sub)

	_, exp, err = tm.Issue("a@x.io", time.Hour)
	require.NoError(t, err)
	require.WithinDuration(t, before.Add(time.Hour), exp, 2*time.Second)
}

func TestTokenResolveRejects(t *testing.T) {
	tm, err := NewTokenManager("secret", "HS256", time.Minute)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Resolve("not-a-token")
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager("other", "HS256", time.Minute)
		require.NoError(t, err)
		tok, _, err := other.Issue("a@x.io", 0)
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("other algorithm", func(t *testing.T) {
		other, err := NewTokenManager("secret", "HS512", time.Minute)
		require.NoError(t, err)
		tok, _, err := other.Issue("a@x.io", 0)
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "a@x.io",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("expired", func(t *testing.T) {
		past, err := NewTokenManager("secret", "HS256", time.Minute)
		require.NoError(t, err)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		tok, _, err := past.Issue("a@x.io", 0)
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("missing expiry", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@x.io"}).
			SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("empty subject", func(t *testing.T) {
		tok, _, err := tm.Issue("", 0)
		require.NoError(t, err)
		_, err = tm.Resolve(tok)
		require.True(t, errors.Is(err, ErrInvalidCredential))
	})
}
