package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestToggleLike_InsertsWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "likes" (.+) ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(1, 2)
	require.NoError(t, err)
	require.True(t, liked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_DeletesWhenPresent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(1, 2)
	require.NoError(t, err)
	require.False(t, liked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUserLikedPin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.HasUserLikedPin(1, 2)
	require.NoError(t, err)
	require.True(t, liked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLikesByPinIDs_EmptyInput(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	counts, err := repo.CountLikesByPinIDs(nil)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestCountLikesByPinIDs_Batch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`SELECT pin_id, COUNT\(\*\) as count FROM "likes"`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"pin_id", "count"}).
			AddRow(1, 3).
			AddRow(2, 1))

	counts, err := repo.CountLikesByPinIDs([]uint{1, 2})
	require.NoError(t, err)
	require.Equal(t, int64(3), counts[1])
	require.Equal(t, int64(1), counts[2])
	require.NoError(t, mock.ExpectationsWereMet())
}
