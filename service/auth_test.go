package service

import (
	"testing"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const password = "violet-Harbor-91-lantern"

func TestAuth(t *testing.T) {
	_, err := NewAuthService(nil, &fakeTokenizer{})
	assert.ErrorIs(t, err, ErrMissingDependency)

	repo := &fakeUserRepo{users: map[string]*dmn.User{}}
	tokens := &fakeTokenizer{}
	auth, err := NewAuthService(repo, tokens)
	require.NoError(t, err)

	t.Run("Register validates the user", func(t *testing.T) {
		assert.ErrorIs(t, auth.Register("ab", password), dmn.ErrUsernameTooShort)
		assert.ErrorIs(t, auth.Register("runner", "123"), dmn.ErrWeakPassword)
	})

	t.Run("Register stores the user once", func(t *testing.T) {
		require.NoError(t, auth.Register("runner", password))
		assert.ErrorIs(t, auth.Register("runner", password), dmn.ErrUsernameConflict)
	})

	t.Run("SignIn issues a day long token", func(t *testing.T) {
		user, token, err := auth.SignIn("runner", password)
		require.NoError(t, err)

		assert.Equal(t, "runner", user.Username)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, tokenLifetime, tokens.exp)
		assert.Equal(t, user.ID.String(), tokens.claims["userID"])
		assert.Equal(t, "runner", tokens.claims["username"])
	})

	t.Run("SignIn hides which credential was wrong", func(t *testing.T) {
		_, _, err := auth.SignIn("runner", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.SignIn("nobody", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("SignIn surfaces repository failures", func(t *testing.T) {
		repo.err = errBackend
		defer func() { repo.err = nil }()

		_, _, err := auth.SignIn("runner", password)
		assert.ErrorIs(t, err, errBackend)
	})
}
