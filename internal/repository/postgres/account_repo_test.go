package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/repository/postgres"
	"github.com/ayune/ayune-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(email string) *domain.Account {
	return &domain.Account{
		ID:        uuid.New(),
		Name:      "Test",
		Email:     email,
		Phone:     "08",
		Gender:    domain.GenderFemale,
		Birthdate: "2000-01-01",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newCredential(hash string) *domain.Credential {
	return &domain.Credential{
		ID:         uuid.New(),
		SecretHash: hash,
		CreatedAt:  time.Now(),
	}
}

func TestAccountRepository_CreateWithCredential(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	credRepo := postgres.NewCredentialRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates both rows", func(t *testing.T) {
		testDB.Truncate(t)

		account := newAccount("both@x.com")
		err := repo.CreateWithCredential(ctx, account, newCredential("hash1"))
		require.NoError(t, err)

		got, err := repo.GetByEmail(ctx, "both@x.com")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)

		cred, err := credRepo.GetByAccountID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "hash1", cred.SecretHash)
	})

	t.Run("failed credential insert rolls back the account", func(t *testing.T) {
		testDB.Truncate(t)

		existing := newAccount("existing@x.com")
		require.NoError(t, repo.CreateWithCredential(ctx, existing, newCredential("hash1")))

		// Reusing the existing account's credential id forces the second
		// insert to fail after the account insert succeeded.
		existingCred, err := credRepo.GetByAccountID(ctx, existing.ID)
		require.NoError(t, err)

		conflicting := newCredential("hash2")
		conflicting.ID = existingCred.ID

		err = repo.CreateWithCredential(ctx, newAccount("orphan@x.com"), conflicting)
		require.Error(t, err)

		// The account insert must have been rolled back.
		_, err = repo.GetByEmail(ctx, "orphan@x.com")
		assert.Error(t, err)
	})

	t.Run("duplicate email fails and leaves no credential", func(t *testing.T) {
		testDB.Truncate(t)

		first := newAccount("dup@x.com")
		require.NoError(t, repo.CreateWithCredential(ctx, first, newCredential("hash1")))

		second := newAccount("dup@x.com")
		cred := newCredential("hash2")
		err := repo.CreateWithCredential(ctx, second, cred)
		require.Error(t, err)

		_, err = credRepo.GetByAccountID(ctx, second.ID)
		assert.Error(t, err)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().WithEmail("update@x.com").Build(t, testDB.DB)

	account.Name = "Renamed"
	account.Coins = 42
	account.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, account))

	got, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 42, got.Coins)

	// Updating an unknown id is not an error.
	ghost := newAccount("ghost@x.com")
	assert.NoError(t, repo.Update(ctx, ghost))
}

func TestAccountRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	credRepo := postgres.NewCredentialRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().WithEmail("delete@x.com").Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, account.ID))

	_, err := repo.GetByID(ctx, account.ID)
	assert.Error(t, err)

	// The credential goes with the account.
	_, err = credRepo.GetByAccountID(ctx, account.ID)
	assert.Error(t, err)

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx, account.ID))
}
