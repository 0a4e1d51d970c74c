package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/repo"
)

// AuthService implements sign-up, sign-in, and session resolution.
// Emails are normalized (trimmed, lowercased) before any lookup, and
// passwords are stored as bcrypt hashes only.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	seeder   *Seeder
}

// NewAuthService constructs an AuthService. seeder may be nil to disable
// demo seeding on sign-in.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo, seeder *Seeder) *AuthService {
	return &AuthService{users: users, sessions: sessions, seeder: seeder}
}

// SignUp registers a new account and signs it in. Returns
// domain.ErrValidation for missing fields or an already-registered email.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (domain.Session, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	switch {
	case email == "":
		return domain.Session{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case password == "":
		return domain.Session{}, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.Session{}, fmt.Errorf("%w: an account with this email already exists", domain.ErrValidation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: hash password: %w", err)
	}

	user := domain.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    domain.Now(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	return s.openSession(ctx, user)
}

// SignIn authenticates an existing account. Both an unknown email and a
// wrong password come back as domain.ErrValidation with a user-facing
// message, matching the original client's error texts.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("%w: no account found for this email", domain.ErrValidation)
		}
		return domain.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, fmt.Errorf("%w: incorrect password", domain.ErrValidation)
	}

	return s.openSession(ctx, user)
}

// Logout ends the session for the given token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

// SessionByToken resolves a bearer token to its session.
func (s *AuthService) SessionByToken(ctx context.Context, token string) (domain.Session, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SessionByToken: %w", err)
	}
	return session, nil
}

// openSession creates a session record and triggers the demo seeder.
// Seeding is best-effort: a storage hiccup on the example trip must not
// fail the sign-in itself.
func (s *AuthService) openSession(ctx context.Context, user domain.User) (domain.Session, error) {
	session := domain.Session{
		Token:     domain.NewID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: domain.Now(),
	}
	if _, err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService: open session: %w", err)
	}

	if s.seeder != nil {
		_ = s.seeder.SeedIfEmpty(ctx, user.ID)
	}
	return session, nil
}

// normalizeEmail trims and lowercases an email for lookup and storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
