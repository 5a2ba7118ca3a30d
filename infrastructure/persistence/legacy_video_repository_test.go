package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/persistence"
)

func newLegacyMock(t *testing.T) (repository.ILegacyVideo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	return persistence.NewLegacyVideoRepository(gormDb), mock
}

func legacyColumns() []string {
	return []string{"id", "title", "description", "thumbnail_url", "video_url", "views", "uploader", "upload_date", "duration"}
}

func TestLegacyList_OrdersByUploadDateDesc(t *testing.T) {
	repo, mock := newLegacyMock(t)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `videos` ORDER BY upload_date DESC").
		WillReturnRows(sqlmock.NewRows(legacyColumns()).
			AddRow("2", "Newer", "", "", "", 20, "chan", now, "10:00").
			AddRow("1", "Older", "", "", "", 10, "chan", now.Add(-time.Hour), "10:00"))

	videos, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, videos, 2)
	assert.Equal(t, "2", videos[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyGetByID_NotFound(t *testing.T) {
	repo, mock := newLegacyMock(t)
	mock.ExpectQuery("SELECT \\* FROM `videos` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(legacyColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacySearch_CaseInsensitiveLike(t *testing.T) {
	repo, mock := newLegacyMock(t)
	mock.ExpectQuery("SELECT \\* FROM `videos` WHERE LOWER\\(title\\) LIKE LOWER\\(\\?\\)").
		WillReturnRows(sqlmock.NewRows(legacyColumns()).
			AddRow("2", "Chill Lofi Beats to Code/Relax To", "", "", "", 5, "chan", time.Now(), "2:01:15"))

	videos, err := repo.Search(context.Background(), "lofi", 20)
	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "Chill Lofi Beats to Code/Relax To", videos[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepository_NilDatabase(t *testing.T) {
	repo := persistence.NewLegacyVideoRepository(nil)
	_, err := repo.List(context.Background())
	assert.Error(t, err)
	_, err = repo.GetByID(context.Background(), "1")
	assert.Error(t, err)
	_, err = repo.Search(context.Background(), "x", 10)
	assert.Error(t, err)
}
