package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirStore(t *testing.T) (*DirectoryStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return &DirectoryStore{db: db, sqldb: db}, mock, db
}

func newFileStore(t *testing.T) (*FileStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return &FileStore{db: db}, mock, db
}

func TestDirectoryStore_Insert(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO directories`).
		WithArgs(sqlmock.AnyArg(), "docs", "", int64(100), false, []byte("[300]"), []byte("[200]")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.Insert(context.Background(), &models.Directory{
		Name: "docs",
		Access: models.Access{
			OwnerID:        100,
			AllowedReaders: []int64{300},
			AllowedWriters: []int64{200},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryStore_FindByID_NotFound(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM directories WHERE id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.FindByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDirectoryStore_FindByID_NormalizesNullACL(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "parent_id", "owner_id", "is_public", "allowed_readers", "allowed_writers",
	}).AddRow("d1", "legacy", "", int64(1), false, nil, nil)

	mock.ExpectQuery(`SELECT .* FROM directories WHERE id`).
		WithArgs("d1").
		WillReturnRows(rows)

	d, err := s.FindByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.NotNil(t, d.AllowedReaders)
	assert.NotNil(t, d.AllowedWriters)
}

func TestDirectoryStore_Update_OnlyTouchedColumns(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE directories SET name = \$1 WHERE id = \$2`).
		WithArgs("renamed", "d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "renamed"
	err := s.Update(context.Background(), "d1", models.DirectoryUpdate{Name: &name})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryStore_Update_EmptySetIsNoop(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	err := s.Update(context.Background(), "d1", models.DirectoryUpdate{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL expected for an empty update")
}

func TestDirectoryStore_Update_ZeroRowsIsNotFound(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE directories SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	name := "x"
	err := s.Update(context.Background(), "missing", models.DirectoryUpdate{Name: &name})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDirectoryStore_Delete(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM directories WHERE id`).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Delete(context.Background(), "d1"))
}

func TestDirectoryStore_CountByParent(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM directories WHERE parent_id`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := s.CountByParent(context.Background(), "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestDirectoryStore_DeleteIfEmpty(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM directories WHERE parent_id`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files WHERE parent_directory_id`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(`DELETE FROM directories WHERE id`).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := s.DeleteIfEmpty(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectoryStore_DeleteIfEmpty_ChildFileBlocks(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM directories WHERE parent_id`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files WHERE parent_directory_id`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectCommit()

	deleted, err := s.DeleteIfEmpty(context.Background(), "d1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet(), "no DELETE expected when a child file exists")
}

func TestDirectoryStore_DeleteIfEmpty_UnknownID(t *testing.T) {
	s, mock, db := newDirStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM directories WHERE parent_id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files WHERE parent_directory_id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(`DELETE FROM directories WHERE id`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	deleted, err := s.DeleteIfEmpty(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.False(t, deleted)
}

func TestFileStore_CountByParent(t *testing.T) {
	s, mock, db := newFileStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files WHERE parent_directory_id`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	n, err := s.CountByParent(context.Background(), "d1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestFileStore_DeleteByParent(t *testing.T) {
	s, mock, db := newFileStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM files WHERE parent_directory_id`).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, s.DeleteByParent(context.Background(), "d1"))
}

func TestFileStore_ListByParent(t *testing.T) {
	s, mock, db := newFileStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "parent_directory_id", "external_file_id",
		"owner_id", "is_public", "allowed_readers", "allowed_writers",
	}).AddRow("f1", "a.txt", "d1", "ext-1", int64(100), true, []byte("[]"), []byte("[200]"))

	mock.ExpectQuery(`SELECT .* FROM files WHERE parent_directory_id`).
		WithArgs("d1").
		WillReturnRows(rows)

	files, err := s.ListByParent(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ext-1", files[0].ExternalFileID)
	assert.Equal(t, []int64{200}, files[0].AllowedWriters)
}
