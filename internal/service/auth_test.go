package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/repo"
	"github.com/hsolberg/travelmate/internal/service"
	"github.com/hsolberg/travelmate/internal/store"
)

// authFixture wires an AuthService against a single in-memory store so
// users, sessions, and seeded trips all live together.
type authFixture struct {
	auth  *service.AuthService
	trips repo.TripRepo
}

func newAuthFixture() authFixture {
	kv := store.NewMemory()
	trips := repo.NewTripRepo(kv)
	auth := service.NewAuthService(
		repo.NewUserRepo(kv),
		repo.NewSessionRepo(kv),
		service.NewSeeder(trips),
	)
	return authFixture{auth: auth, trips: trips}
}

// ---- SignUp ----------------------------------------------------------------

func TestAuthService_SignUp(t *testing.T) {
	f := newAuthFixture()

	session, err := f.auth.SignUp(context.Background(), " Hanna ", " Hanna@Example.com ", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.UserID)
	assert.Equal(t, "Hanna", session.Name)
	assert.Equal(t, "hanna@example.com", session.Email, "email is normalized before storage")
}

func TestAuthService_SignUp_SeedsExampleTrip(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	session, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	trips, err := f.trips.List(ctx, session.UserID)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Tokyo", trips[0].DestinationName)
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Hanna", "   ", "secret")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	_, err = f.auth.SignUp(ctx, "Other", "HANNA@example.com", "other-secret")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "already exists")
}

// ---- SignIn ----------------------------------------------------------------

func TestAuthService_SignIn(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	signedUp, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	session, err := f.auth.SignIn(ctx, "hanna@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, signedUp.UserID, session.UserID)
	assert.NotEqual(t, signedUp.Token, session.Token, "each sign-in opens a fresh session")
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.auth.SignIn(context.Background(), "nobody@example.com", "secret")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "no account found")
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	_, err = f.auth.SignIn(ctx, "hanna@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "incorrect password")
}

// ---- Sessions --------------------------------------------------------------

func TestAuthService_SessionByToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	session, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	got, err := f.auth.SessionByToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)

	_, err = f.auth.SessionByToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	session, err := f.auth.SignUp(ctx, "Hanna", "hanna@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, session.Token))

	_, err = f.auth.SessionByToken(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Logging out again is a no-op.
	assert.NoError(t, f.auth.Logout(ctx, session.Token))
}
