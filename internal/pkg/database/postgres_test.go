package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T, opts ...func(sqlmock.Sqlmock)) (*PostgresClient, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	for _, opt := range opts {
		opt(mock)
	}

	return &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}, mock
}

func TestPostgresClient_GetDB(t *testing.T) {
	client, mock := newMockClient(t)
	defer client.Close()

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.Equal(t, client.db, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("close succeeds", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectClose()

		err := client.Close()
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close propagates driver error", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		err := client.Close()
		assert.Error(t, err)
		assert.Equal(t, sql.ErrConnDone, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresClient_Transactions(t *testing.T) {
	client, mock := newMockClient(t)
	defer client.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vehicles").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := client.GetDB().Beginx()
	require.NoError(t, err)

	_, err = tx.Exec("INSERT INTO vehicles (vehicle_number) VALUES ($1)", "CF-1001")
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_QueryError(t *testing.T) {
	client, mock := newMockClient(t)
	defer client.Close()

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	var result struct{ ID int }
	err := client.GetDB().Get(&result, "SELECT id FROM vehicles WHERE vehicle_number = $1", "CF-9999")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
