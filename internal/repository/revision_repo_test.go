package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return db, mock
}

const maxVersionQuery = "SELECT MAX(version) FROM `content_revisions` WHERE content_type = ? AND content_id = ? AND organization_id = ? FOR UPDATE"

func TestRevisionCreate_FirstVersionIsOne(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(maxVersionQuery)).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(nil))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `content_revisions`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rev := &domain.Revision{
		ContentType: domain.ContentTypePost, ContentID: 10,
		Title: "T", Content: "C", Metadata: domain.JSONMap{}, OrganizationID: 1,
	}
	err := repo.Create(rev)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), rev.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevisionCreate_VersionIsMaxPlusOne(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(maxVersionQuery)).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `content_revisions`")).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	rev := &domain.Revision{
		ContentType: domain.ContentTypePost, ContentID: 10,
		Metadata: domain.JSONMap{}, OrganizationID: 1,
	}
	err := repo.Create(rev)

	assert.NoError(t, err)
	assert.Equal(t, uint(5), rev.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevisionCreate_RetriesOnceOnDuplicateKey(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	// First attempt loses the race on the unique index
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(maxVersionQuery)).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `content_revisions`")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	// Retry sees the winner's row and takes the next number
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(maxVersionQuery)).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `content_revisions`")).
		WillReturnResult(sqlmock.NewResult(6, 1))
	mock.ExpectCommit()

	rev := &domain.Revision{
		ContentType: domain.ContentTypePost, ContentID: 10,
		Metadata: domain.JSONMap{}, OrganizationID: 1,
	}
	err := repo.Create(rev)

	assert.NoError(t, err)
	assert.Equal(t, uint(6), rev.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevisionFindByID_OtherTenantIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `content_revisions` WHERE id = ? AND organization_id = ?")).
		WithArgs(30, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(30, 2)

	assert.ErrorIs(t, err, common.ErrRevisionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneExcess_UnderCapIsNoOp(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `version` FROM `content_revisions`")).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	pruned, err := repo.PruneExcess(domain.ContentTypePost, 10, 1, 50)

	assert.NoError(t, err)
	assert.Zero(t, pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneExcess_DeletesBelowCutoff(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRevisionRepository(db)

	// 50th-newest version is 5; everything older goes
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `version` FROM `content_revisions`")).
		WithArgs("post", 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(5))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `content_revisions` WHERE content_type = ? AND content_id = ? AND organization_id = ? AND version < ?")).
		WithArgs("post", 10, 1, 5).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	pruned, err := repo.PruneExcess(domain.ContentTypePost, 10, 1, 50)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), pruned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
