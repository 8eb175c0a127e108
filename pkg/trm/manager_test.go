package trm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE events (name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func insertEvent(ctx context.Context, db *sqlx.DB, name string) error {
	if tx := ExtractTx(ctx); tx != nil {
		_, err := tx.ExecContext(ctx, `INSERT INTO events (name) VALUES ($1)`, name)
		return err
	}
	_, err := db.ExecContext(ctx, `INSERT INTO events (name) VALUES ($1)`, name)
	return err
}

func countEvents(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT count(*) FROM events`))
	return n
}

func TestManager_Do(t *testing.T) {
	db := setupTestDB(t)
	m := NewManager(db)
	errBoom := errors.New("boom")

	testCases := []struct {
		name      string
		callback  func(ctx context.Context) error
		wantErr   error
		wantCount int
	}{
		{
			name: "commit",
			callback: func(ctx context.Context) error {
				require.NotNil(t, ExtractTx(ctx))
				return insertEvent(ctx, db, "placed")
			},
			wantCount: 1,
		},
		{
			name: "rollback on error",
			callback: func(ctx context.Context) error {
				require.NoError(t, insertEvent(ctx, db, "placed"))
				return errBoom
			},
			wantErr: errBoom,
		},
		{
			name: "nested call joins outer transaction",
			callback: func(ctx context.Context) error {
				outer := ExtractTx(ctx)
				err := m.Do(ctx, func(ctx context.Context) error {
					assert.Same(t, outer, ExtractTx(ctx))
					return insertEvent(ctx, db, "paid")
				})
				require.NoError(t, err)
				// вложенный вызов не коммитит: внешняя ошибка откатывает и его запись
				return errBoom
			},
			wantErr: errBoom,
		},
		{
			name: "nested commit happens once",
			callback: func(ctx context.Context) error {
				require.NoError(t, insertEvent(ctx, db, "placed"))
				return m.Do(ctx, func(ctx context.Context) error {
					return insertEvent(ctx, db, "paid")
				})
			},
			wantCount: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.Exec(`TRUNCATE events`)
			require.NoError(t, err)

			err = m.Do(context.Background(), tc.callback)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantCount, countEvents(t, db))
		})
	}
}

func TestExtractTx_Empty(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))
}
