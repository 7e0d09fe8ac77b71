package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/notekeep/authserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(email string) types.Account {
	return types.Account{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
	}
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	inserted, err := m.InsertIfAbsent(ctx, testAccount("ada@example.com"))
	require.NoError(t, err)
	assert.False(t, inserted.CreatedAt.IsZero())

	byEmail, err := m.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, inserted, byEmail)

	byID, err := m.FindByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, byID)

	_, err = m.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDuplicateEmail(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.InsertIfAbsent(ctx, testAccount("ada@example.com"))
	require.NoError(t, err)

	_, err = m.InsertIfAbsent(ctx, testAccount("ada@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryStoreEmailIsExactMatch(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.InsertIfAbsent(ctx, testAccount("Ada@example.com"))
	require.NoError(t, err)

	// Lookups and uniqueness compare the stored form exactly.
	_, err = m.FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.InsertIfAbsent(ctx, testAccount("ada@example.com"))
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestMemoryStoreConcurrentInsertSameEmail(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.InsertIfAbsent(ctx, testAccount("ada@example.com"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, duplicates int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrDuplicateEmail):
			duplicates++
		}
	}

	assert.Equal(t, 1, wins, "exactly one concurrent insert must win")
	assert.Equal(t, workers-1, duplicates)
	assert.Equal(t, 1, m.Len())
}
