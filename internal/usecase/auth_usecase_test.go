package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/usecase/dto"
)

func TestAuthUseCase_ValidationOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mode    domain.AuthMode
		req     dto.AuthRequest
		message string
	}{
		{
			name:    "signup without name wins over everything",
			mode:    domain.ModeSignup,
			req:     dto.AuthRequest{Channel: "email", Name: "   "},
			message: "Please enter your name",
		},
		{
			name:    "missing email",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "email", Email: " "},
			message: "Please enter your email address",
		},
		{
			name:    "malformed email",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "email", Email: "a@b"},
			message: "Please enter a valid email address",
		},
		{
			name:    "missing phone",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "phone"},
			message: "Please enter your phone number",
		},
		{
			name:    "non philippine phone",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "phone", Phone: "0812345678"},
			message: "Please enter a valid Philippine phone number (09XXXXXXXXX)",
		},
		{
			name:    "missing password",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "phone", Phone: "+639171234567"},
			message: "Please enter your password",
		},
		{
			name:    "short password",
			mode:    domain.ModeLogin,
			req:     dto.AuthRequest{Channel: "email", Email: "a@b.com", Password: "abcde"},
			message: "Password must be at least 6 characters",
		},
		{
			name:    "confirmation mismatch",
			mode:    domain.ModeSignup,
			req:     dto.AuthRequest{Channel: "email", Name: "Ana", Email: "a@b.com", Password: "abcdef", ConfirmPassword: "abcdeg"},
			message: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.auth.Authenticate(ctx, tt.mode, tt.req)
			assert.Nil(t, resp)
			require.Error(t, err)

			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, "AUTH_VALIDATION", appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	count, err := f.sessions.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAuthUseCase_Signup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Authenticate(ctx, domain.ModeSignup, dto.AuthRequest{
		Channel:         "email",
		Name:            " Ana Cruz ",
		Email:           "a@b.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
	assert.Equal(t, "Ana Cruz", resp.State.User.Name)
	assert.Equal(t, "a@b.com", resp.State.User.Email)
	assert.Empty(t, resp.State.User.Phone)
	assert.Equal(t, domain.Quota{ReportsRemaining: 5, UpvotesRemaining: 5}, resp.State.Quota)
	assert.Equal(t, domain.TabFeed, resp.State.ActiveTab)
	assert.Equal(t, domain.FilterAll, resp.State.Filter)
	assert.Equal(t, "SafeStreets", resp.State.Header.Title)
}

func TestAuthUseCase_LoginWithPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Authenticate(ctx, domain.ModeLogin, dto.AuthRequest{
		Channel:  "phone",
		Name:     "ignored on login",
		Phone:    "09171234567",
		Password: "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMemberName, resp.State.User.Name)
	assert.Equal(t, "09171234567", resp.State.User.Phone)
	assert.Equal(t, domain.ChannelPhone, resp.State.User.Channel)
	assert.Empty(t, resp.State.User.Email)
}

func TestAuthUseCase_UnknownChannel(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Authenticate(context.Background(), domain.ModeLogin, dto.AuthRequest{Channel: "fax"})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestAuthUseCase_ResolveTokenAndLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Authenticate(ctx, domain.ModeLogin, dto.AuthRequest{
		Channel:  "email",
		Email:    "member@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	sessionID, err := f.auth.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	_, err = f.auth.ResolveToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, errors.ErrUnauthenticated)

	require.NoError(t, f.auth.Logout(ctx, sessionID))

	_, err = f.auth.ResolveToken(ctx, resp.Token)
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}
