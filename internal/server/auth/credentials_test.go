package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_Check(t *testing.T) {
	a, err := NewAuthenticator("password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		want     string
		wantErr  bool
	}{
		{name: "ok", username: "user1", password: "password", want: "user1"},
		{name: "trimmed", username: "  user42 ", password: "password", want: "user42"},
		{name: "wrong password", username: "user1", password: "Password", wantErr: true},
		{name: "no number", username: "user", password: "password", wantErr: true},
		{name: "other name", username: "admin", password: "password", wantErr: true},
		{name: "suffix", username: "user1x", password: "password", wantErr: true},
		{name: "empty", username: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Check(tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAuthenticator_TooLongPassword(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	_, err := NewAuthenticator(string(long))
	assert.Error(t, err)
}
