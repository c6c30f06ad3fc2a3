package sqlite_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/SscSPs/client_service/internal/core/domain"
	"github.com/SscSPs/client_service/internal/repositories/database/sqlite"
	"github.com/SscSPs/client_service/migrations"
	"github.com/SscSPs/client_service/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepo(t *testing.T) (*sqlite.SQLiteClientRepository, context.Context) {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite(database.InMemorySQLite)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.SeedSQLite(ctx, db, migrations.SeedClients)
	require.NoError(t, err)

	return sqlite.NewClientRepository(db).(*sqlite.SQLiteClientRepository), ctx
}

func TestFindClientByID(t *testing.T) {
	repo, ctx := newSeededRepo(t)

	client, err := repo.FindClientByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Conceição Evaristo", client.Name)
	assert.Equal(t, time.Date(1946, 11, 29, 0, 0, 0, 0, time.UTC), client.BirthDate)
	assert.True(t, decimal.NewFromInt(1500).Equal(client.Income))

	_, err = repo.FindClientByID(ctx, 1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindClientsByMinIncome(t *testing.T) {
	repo, ctx := newSeededRepo(t)
	minIncome := decimal.NewFromInt(4000)

	tests := []struct {
		name    string
		page    domain.PageRequest
		wantLen int
	}{
		{name: "first page", page: domain.PageRequest{Page: 0, Size: 6}, wantLen: 5},
		{name: "partial last page", page: domain.PageRequest{Page: 1, Size: 4}, wantLen: 1},
		{name: "beyond range", page: domain.PageRequest{Page: 3, Size: 4}, wantLen: 0},
		{name: "offset past int64", page: domain.PageRequest{Page: math.MaxInt64/2 + 1, Size: 2}, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients, total, err := repo.FindClientsByMinIncome(ctx, minIncome, tt.page)
			require.NoError(t, err)
			assert.Equal(t, int64(5), total)
			assert.NotNil(t, clients)
			assert.Len(t, clients, tt.wantLen)
			for _, c := range clients {
				assert.True(t, c.Income.GreaterThanOrEqual(minIncome))
			}
		})
	}
}

func TestSaveClient_RoundTrip(t *testing.T) {
	repo, ctx := newSeededRepo(t)

	saved, err := repo.SaveClient(ctx, domain.Client{
		Name:      "Maria Firmina dos Reis",
		CPF:       "12345678901",
		BirthDate: time.Date(1990, 3, 11, 0, 0, 0, 0, time.UTC),
		Income:    decimal.RequireFromString("3200.50"),
		Children:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), saved.ID)

	stored, err := repo.FindClientByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.BirthDate, stored.BirthDate)
	assert.True(t, saved.Income.Equal(stored.Income))
}

func TestUpdateAndDelete_Missing(t *testing.T) {
	repo, ctx := newSeededRepo(t)

	_, err := repo.UpdateClient(ctx, domain.Client{
		ID:        1000,
		Name:      "Nobody",
		CPF:       "12345678901",
		BirthDate: time.Date(1990, 3, 11, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteClient(ctx, 1000), apperrors.ErrNotFound)
}

func TestUpdateClient_ReturnsStoredRow(t *testing.T) {
	repo, ctx := newSeededRepo(t)

	updated, err := repo.UpdateClient(ctx, domain.Client{
		ID:        1,
		Name:      "Jymmy Hendrix",
		CPF:       "63663663699",
		BirthDate: time.Date(1942, 11, 27, 0, 0, 0, 0, time.UTC),
		Income:    decimal.RequireFromString("4200.75"),
		Children:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Jymmy Hendrix", updated.Name)
	assert.Equal(t, time.Date(1942, 11, 27, 0, 0, 0, 0, time.UTC), updated.BirthDate)
	assert.True(t, decimal.RequireFromString("4200.75").Equal(updated.Income))

	stored, err := repo.FindClientByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestSaveClient_ConstraintViolations(t *testing.T) {
	valid := domain.Client{
		Name:      "Maria Firmina dos Reis",
		CPF:       "12345678901",
		BirthDate: time.Date(1990, 3, 11, 0, 0, 0, 0, time.UTC),
		Income:    decimal.RequireFromString("3200.50"),
		Children:  1,
	}

	tests := []struct {
		name   string
		mutate func(c *domain.Client)
	}{
		{name: "negative children", mutate: func(c *domain.Client) { c.Children = -1 }},
		{name: "missing birth date", mutate: func(c *domain.Client) { c.BirthDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, ctx := newSeededRepo(t)
			client := valid
			tt.mutate(&client)

			_, err := repo.SaveClient(ctx, client)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			client.ID = 1
			_, err = repo.UpdateClient(ctx, client)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			clients, err := repo.ListClients(ctx)
			require.NoError(t, err)
			assert.Len(t, clients, 12)
		})
	}
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	repo, ctx := newSeededRepo(t)
	abort := errors.New("abort")

	err := repo.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := repo.DeleteClient(ctx, 1); err != nil {
			return err
		}
		return abort
	})
	require.ErrorIs(t, err, abort)

	_, err = repo.FindClientByID(ctx, 1)
	assert.NoError(t, err)
}
