package jwt_test

import (
	"testing"

	"pantrypal-backend/domain"
	"pantrypal-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwt.NewJWTServiceWithSecret("test-secret")

	token := svc.GenerateTokenUser("42a7c0de-0000-0000-0000-000000000001", "alice@example.com")
	require.NotEmpty(t, token)

	userID, email, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42a7c0de-0000-0000-0000-000000000001", userID)
	assert.Equal(t, "alice@example.com", email)
}

func TestGetUserIDByToken(t *testing.T) {
	svc := jwt.NewJWTServiceWithSecret("test-secret")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "garbage token",
			token:   "not.a.token",
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name:    "token signed with another secret",
			token:   jwt.NewJWTServiceWithSecret("other-secret").GenerateTokenUser("id", "a@b.c"),
			wantErr: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.GetUserIDByToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
