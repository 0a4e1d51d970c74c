package repo

import (
	"context"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/store"
)

// SessionRepo defines the persistence operations for active sign-ins.
// The original client kept a single session record; a server has many
// concurrent users, so sessions are a collection keyed by bearer token.
type SessionRepo interface {
	// Create prepends a new session and returns it.
	Create(ctx context.Context, session domain.Session) (domain.Session, error)

	// GetByToken returns the session for the given bearer token,
	// or domain.ErrNotFound.
	GetByToken(ctx context.Context, token string) (domain.Session, error)

	// Delete removes the session with the given token.
	// Deleting an absent session is a no-op.
	Delete(ctx context.Context, token string) error
}

type kvSessionRepo struct {
	kv store.KV
}

// NewSessionRepo constructs a SessionRepo backed by the provided store.
func NewSessionRepo(kv store.KV) SessionRepo {
	return &kvSessionRepo{kv: kv}
}

func (r *kvSessionRepo) Create(ctx context.Context, session domain.Session) (domain.Session, error) {
	all := store.ReadCollection[domain.Session](ctx, r.kv, store.SessionsKey)
	all = append([]domain.Session{session}, all...)
	if err := store.WriteCollection(ctx, r.kv, store.SessionsKey, all); err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return session, nil
}

func (r *kvSessionRepo) GetByToken(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetByToken: %w", domain.ErrNotFound)
	}
	for _, s := range store.ReadCollection[domain.Session](ctx, r.kv, store.SessionsKey) {
		if s.Token == token {
			return s, nil
		}
	}
	return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetByToken: %w", domain.ErrNotFound)
}

func (r *kvSessionRepo) Delete(ctx context.Context, token string) error {
	all := store.ReadCollection[domain.Session](ctx, r.kv, store.SessionsKey)
	kept := all[:0]
	removed := false
	for _, s := range all {
		if s.Token == token {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return nil
	}
	if err := store.WriteCollection(ctx, r.kv, store.SessionsKey, kept); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	return nil
}
