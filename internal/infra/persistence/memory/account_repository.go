// Package memory provides mutex-guarded in-memory implementations of the
// persistence interfaces. State lives for the process lifetime only; this
// service is explicitly single-instance.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookrack/internal/domain/entity"
	"bookrack/internal/domain/repository"
)

// AccountRepository owns the set of registered accounts.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
}

// NewAccountRepository is the constructor for AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{accounts: make(map[string]*entity.Account)}
}

// IsUsernameAvailable reports whether username can still be registered.
func (r *AccountRepository) IsUsernameAvailable(_ context.Context, username string) bool {
	if strings.TrimSpace(username) == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, taken := r.accounts[username]

	return !taken
}

// Create inserts a new account. The availability check and the insert happen
// under one lock so concurrent registrations of the same username cannot
// both succeed.
func (r *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	if strings.TrimSpace(account.Username) == "" {
		return repository.ErrAccountExists
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.accounts[account.Username]; taken {
		return repository.ErrAccountExists
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	stored := *account
	r.accounts[account.Username] = &stored

	return nil
}

// VerifyCredentials reports whether username and password match an account
// exactly.
func (r *AccountRepository) VerifyCredentials(_ context.Context, username, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]

	return ok && account.Password == password
}

// FindByUsername retrieves a single account by its exact username.
func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	found := *account

	return &found, nil
}
