package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nehru-cyber/task-manager/internal/repository"
	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)))
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", registered.Email)
	assert.Equal(t, "Alice", registered.DisplayName)
	assert.Contains(t, registered.UserID, "user_")

	logged, err := svc.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, logged.UserID)
}

func TestRegisterDefaultsDisplayNameToLocalPart(t *testing.T) {
	svc := newAuthService(t)

	u, err := svc.Register(context.Background(), "Bob.Smith@Example.com", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, "bob.smith@example.com", u.Email)
	assert.Equal(t, "bob.smith", u.DisplayName)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret1"},
		{"missing password", "a@b.com", ""},
		{"no at sign", "not-an-email", "secret1"},
		{"short password", "a@b.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.password, "")
			assert.True(t, appErr.IsCode(err, appErr.CodeInvalid), "got %v", err)
		})
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "CAROL@example.com", "other-pass", "")
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict), "got %v", err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave@example.com", "secret1", "")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody@example.com", "secret1")
	_, wrongErr := svc.Login(ctx, "dave@example.com", "wrong-pass")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, appErr.IsCode(unknownErr, appErr.CodeUnauthorized))
	assert.True(t, appErr.IsCode(wrongErr, appErr.CodeUnauthorized))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestProfile(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "erin@example.com", "secret1", "Erin")
	require.NoError(t, err)

	p, err := svc.Profile(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, p.UID)
	assert.Equal(t, "Erin", p.DisplayName)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = svc.Profile(ctx, "user_ffffffffffffffff")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
