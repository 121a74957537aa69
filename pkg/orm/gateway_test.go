package orm

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechXTT/blog/pkg/logger"
)

func testContext() context.Context {
	return logger.ContextWithLogger(context.Background(), logger.NewLogger(logger.TestConfig()))
}

func TestSelect_ReturnsColumnKeyedRows(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "TechXT").
		AddRow(2, "Randy")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`, `name` FROM `users` WHERE `id` > ?")).
		WithArgs(0).
		WillReturnRows(rows)

	db := NewDB(mockDB, MySQL)
	got, err := db.Select(testContext(), "SELECT `id`, `name` FROM `users` WHERE `id` > ?", []any{0}, 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "TechXT", got[0]["name"])
	assert.Equal(t, "Randy", got[1]["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_HonoursRowLimit(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	db := NewDB(mockDB, MySQL)
	got, err := db.Select(testContext(), "SELECT `id` FROM `t`", nil, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Zero(t, mockDB.Stats().InUse, "connection returned to the pool with rows unread")
}

func TestSelect_PropagatesDriverError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT").WillReturnError(boom)

	db := NewDB(mockDB, MySQL)
	_, err = db.Select(testContext(), "SELECT 1", nil, 0)
	assert.Equal(t, boom, err)
	assert.Zero(t, mockDB.Stats().InUse)
}

func TestSelect_ReleasesConnectionOnRowError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	boom := errors.New("lost connection during query")
	rows := sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).RowError(1, boom)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	db := NewDB(mockDB, MySQL)
	_, err = db.Select(testContext(), "SELECT `id` FROM `t`", nil, 0)
	assert.Equal(t, boom, err)
	assert.Zero(t, mockDB.Stats().InUse)
}

func TestExecute_ReturnsAffectedRows(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE `id` = ?")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	db := NewDB(mockDB, MySQL)
	n, err := db.Execute(testContext(), "DELETE FROM `users` WHERE `id` = ?", []any{"u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, mockDB.Stats().InUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_PropagatesDriverErrorUnchanged(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	boom := errors.New("duplicate entry")
	mock.ExpectExec("INSERT").WillReturnError(boom)

	db := NewDB(mockDB, MySQL)
	_, err = db.Execute(testContext(), "INSERT INTO `t` (`id`) VALUES (?)", []any{1})
	assert.Equal(t, boom, err)
	assert.Zero(t, mockDB.Stats().InUse)
}

func TestExecute_RewritesForPostgres(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "name" = $1 WHERE "id" = $2`)).
		WithArgs("alice", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	db := NewDB(mockDB, Postgres)
	_, err = db.Execute(testContext(), "UPDATE `users` SET `name` = ? WHERE `id` = ?", []any{"alice", "u1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing()

	db := NewDB(mockDB, MySQL)
	require.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDialect_Rebind(t *testing.T) {
	q, err := MySQL.Rebind("SELECT `a` FROM `t` WHERE `a` = ?")
	require.NoError(t, err)
	assert.Equal(t, "SELECT `a` FROM `t` WHERE `a` = ?", q)

	q, err = Postgres.Rebind("INSERT INTO `t` (`a`,`b`) VALUES (?,?)")
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("a","b") VALUES ($1,$2)`, q)

	_, err = DialectFor("oracle")
	require.Error(t, err)
	d, err := DialectFor("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)
}
