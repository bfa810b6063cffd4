package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/daily-missions-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// The record insert and the experience grant must travel in one transaction,
// with the grant expressed as an in-database increment rather than a
// read-modify-write.
func TestCreateWithReward_SingleTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompletionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users` SET `experience`=experience \\+ \\? WHERE id = \\?").
		WithArgs(50, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateWithReward(&models.Completion{UserID: 7, MissionID: 3}, 50)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithReward_ZeroRewardSkipsUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompletionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateWithReward(&models.Completion{UserID: 7, MissionID: 3}, 0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed grant rolls the record insert back; the user is never left
// under-credited with the record already written.
func TestCreateWithReward_GrantFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompletionRepository(db)

	grantErr := errors.New("update failed")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users`").
		WillReturnError(grantErr)
	mock.ExpectRollback()

	err := repo.CreateWithReward(&models.Completion{UserID: 7, MissionID: 3}, 50)
	assert.ErrorIs(t, err, grantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
