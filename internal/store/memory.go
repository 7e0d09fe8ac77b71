package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notekeep/authserver/types"
)

// MemoryStore is a mutex-guarded in-memory account store. It honours
// the same check-then-insert atomicity as the SQL repository and backs
// tests that do not need Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]types.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]types.Account)}
}

func (m *MemoryStore) FindByEmail(ctx context.Context, email string) (types.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[email]
	if !ok {
		return types.Account{}, ErrNotFound
	}
	return account, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id uuid.UUID) (types.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return types.Account{}, ErrNotFound
}

func (m *MemoryStore) InsertIfAbsent(ctx context.Context, account types.Account) (types.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Email]; exists {
		return types.Account{}, ErrDuplicateEmail
	}

	account.CreatedAt = time.Now()
	m.accounts[account.Email] = account
	return account, nil
}

// Len reports the number of stored accounts.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}
