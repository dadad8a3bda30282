package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_carver_42",
			PlainPassword: "correct horse battery staple",
		})
		require.NoError(t, err)

		assert.Equal(t, "maze_carver_42", user.Username)
		assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)
		assert.True(t, user.VerifyPassword("correct horse battery staple"))
		assert.False(t, user.VerifyPassword("wrong password"))
	})

	t.Run("rejects bad usernames", func(t *testing.T) {
		cases := map[string]struct {
			username string
			want     error
		}{
			"too short":   {"ab", ErrUsernameTooShort},
			"too long":    {"abcdefghijklmnopqrstu", ErrUsernameTooLong},
			"bad charset": {"maze carver!", ErrInvalidUsernameFormat},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := NewUser(UserConfig{
					ID:            uuid.New(),
					Username:      tc.username,
					PlainPassword: "correct horse battery staple",
				})
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_carver",
			PlainPassword: "password1",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
