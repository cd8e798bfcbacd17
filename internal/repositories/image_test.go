package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setupImageMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestImageWriteRepository_Save(t *testing.T) {
	db, mock := setupImageMockDB(t)

	userID := uuid.New()
	data := []byte("png-bytes")

	mock.ExpectExec("INSERT INTO images").
		WithArgs(sqlmock.AnyArg(), userID, "cat", data, "image/png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewImageWriteRepository(db)

	imageID, err := repo.Save(context.Background(), userID, "cat", data, "image/png")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, imageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageWriteRepository_SaveError(t *testing.T) {
	db, mock := setupImageMockDB(t)

	userID := uuid.New()

	mock.ExpectExec("INSERT INTO images").
		WithArgs(sqlmock.AnyArg(), userID, "cat", []byte("png-bytes"), "image/png").
		WillReturnError(errors.New("insert failed"))

	repo := NewImageWriteRepository(db)

	imageID, err := repo.Save(context.Background(), userID, "cat", []byte("png-bytes"), "image/png")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, imageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReadRepository_ListByUserID(t *testing.T) {
	db, mock := setupImageMockDB(t)

	userID := uuid.New()
	newestID := uuid.New()
	olderID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"image_id", "user_id", "title", "data", "content_type", "created_at"}).
		AddRow(newestID, userID, "newest", []byte("a"), "image/png", now).
		AddRow(olderID, userID, "older", []byte("b"), "image/jpeg", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT image_id, user_id, title, data, content_type, created_at FROM images").
		WithArgs(userID).
		WillReturnRows(rows)

	repo := NewImageReadRepository(db)

	images, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, images, 2)
	assert.Equal(t, newestID, images[0].ImageID)
	assert.Equal(t, "newest", images[0].Title)
	assert.Equal(t, olderID, images[1].ImageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReadRepository_ListByUserIDEmpty(t *testing.T) {
	db, mock := setupImageMockDB(t)

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"image_id", "user_id", "title", "data", "content_type", "created_at"})

	mock.ExpectQuery("SELECT image_id, user_id, title, data, content_type, created_at FROM images").
		WithArgs(userID).
		WillReturnRows(rows)

	repo := NewImageReadRepository(db)

	images, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReadRepository_ListByUserIDError(t *testing.T) {
	db, mock := setupImageMockDB(t)

	userID := uuid.New()

	mock.ExpectQuery("SELECT image_id, user_id, title, data, content_type, created_at FROM images").
		WithArgs(userID).
		WillReturnError(errors.New("select failed"))

	repo := NewImageReadRepository(db)

	images, err := repo.ListByUserID(context.Background(), userID)
	assert.Error(t, err)
	assert.Nil(t, images)
	assert.NoError(t, mock.ExpectationsWereMet())
}
