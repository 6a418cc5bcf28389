// Package testutil provides in-memory fakes for the domain repositories.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"

	"github.com/google/uuid"
)

// UserRepository is an in-memory repository.UserRepository. It mirrors the
// store's behavior closely enough for usecase and handler tests: emails are
// unique case-insensitively and Create fills in ID and timestamps.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	// Err, when set, is returned by every call. Lets tests exercise the
	// infrastructure failure paths.
	Err error
}

// NewUserRepository creates an empty in-memory repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*entity.User)}
}

// FindByID implements repository.UserRepository.
func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	cloned := *user

	return &cloned, nil
}

// FindByEmail implements repository.UserRepository.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create implements repository.UserRepository.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

// Delete removes a stored user. It exists for tests that resolve sessions
// whose account has disappeared.
func (r *UserRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users)
}
