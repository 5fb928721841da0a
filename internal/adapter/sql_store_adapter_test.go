package adapter

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"careerpath/internal/database"
	"careerpath/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLStoreTestDB creates a new sqlx.DB instance and sqlmock for store testing.
func setupSQLStoreTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestSQLStoreAdapter_Get(t *testing.T) {
	db, mock := setupSQLStoreTestDB(t)
	store := NewSQLStoreAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"STORE_VALUE"}).AddRow(`{"jobRole":"Data Scientist"}`)
		mock.ExpectQuery(regexp.QuoteMeta(selectValueQuery)).WithArgs(domain.KeyRoadmap).WillReturnRows(rows)

		val, err := store.Get(ctx, domain.KeyRoadmap)
		assert.NoError(t, err)
		assert.Equal(t, `{"jobRole":"Data Scientist"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("KeyNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectValueQuery)).WithArgs(domain.KeyRoadmap).WillReturnError(sql.ErrNoRows)

		val, err := store.Get(ctx, domain.KeyRoadmap)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta(selectValueQuery)).WithArgs(domain.KeyRoadmap).WillReturnError(dbErr)

		_, err := store.Get(ctx, domain.KeyRoadmap)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLStoreAdapter_Set(t *testing.T) {
	db, mock := setupSQLStoreTestDB(t)
	store := NewSQLStoreAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteValueQuery)).WithArgs(domain.KeyQuizHistory).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertValueQuery)).WithArgs(domain.KeyQuizHistory, "[]", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.Set(ctx, domain.KeyQuizHistory, "[]"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFailsRollsBack", func(t *testing.T) {
		dbErr := errors.New("value too large")
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteValueQuery)).WithArgs(domain.KeyQuizHistory).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(insertValueQuery)).WithArgs(domain.KeyQuizHistory, "[]", sqlmock.AnyArg()).
			WillReturnError(dbErr)
		mock.ExpectRollback()

		assert.ErrorIs(t, store.Set(ctx, domain.KeyQuizHistory, "[]"), dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLStoreAdapter_Delete(t *testing.T) {
	db, mock := setupSQLStoreTestDB(t)
	store := NewSQLStoreAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(deleteValueQuery)).WithArgs(domain.KeyLastActivity).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.Delete(context.Background(), domain.KeyLastActivity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreAdapter_SQLite(t *testing.T) {
	db, err := database.NewSQLXDB(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.RunMigrations(db.DB, database.DriverSQLite))

	store := NewSQLStoreAdapter(db)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	_, err = store.Get(ctx, domain.KeyRoadmap)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, domain.KeyRoadmap, `{"jobRole":"a"}`))
	require.NoError(t, store.Set(ctx, domain.KeyRoadmap, `{"jobRole":"b"}`))

	val, err := store.Get(ctx, domain.KeyRoadmap)
	require.NoError(t, err)
	assert.Equal(t, `{"jobRole":"b"}`, val)

	require.NoError(t, store.Delete(ctx, domain.KeyRoadmap))
	_, err = store.Get(ctx, domain.KeyRoadmap)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
