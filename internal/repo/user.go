package repo

import (
	"context"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/store"
)

// UserRepo defines the persistence operations for user accounts.
// Email uniqueness is enforced by the auth service, not here.
type UserRepo interface {
	// Create prepends a new user record and returns it.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByEmail returns the user with the given (already normalized)
	// email, or domain.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByID returns the user with the given id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type kvUserRepo struct {
	kv store.KV
}

// NewUserRepo constructs a UserRepo backed by the provided store.
func NewUserRepo(kv store.KV) UserRepo {
	return &kvUserRepo{kv: kv}
}

func (r *kvUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	all := store.ReadCollection[domain.User](ctx, r.kv, store.UsersKey)
	all = append([]domain.User{user}, all...)
	if err := store.WriteCollection(ctx, r.kv, store.UsersKey, all); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return user, nil
}

func (r *kvUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range store.ReadCollection[domain.User](ctx, r.kv, store.UsersKey) {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", domain.ErrNotFound)
}

func (r *kvUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	for _, u := range store.ReadCollection[domain.User](ctx, r.kv, store.UsersKey) {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", domain.ErrNotFound)
}
