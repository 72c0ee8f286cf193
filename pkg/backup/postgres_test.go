package backup

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soedr/google-flights-api/pkg/postgres"
)

func setupPostgresSink(t *testing.T) (*PostgresSink, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewPostgresSink(postgres.NewFromDB(db), nil), mock
}

func TestPostgresSink_Save(t *testing.T) {
	sink, mock := setupPostgresSink(t)
	rec := testRecord()

	mock.ExpectExec(`INSERT INTO "search_backups"`).
		WithArgs(sqlmock.AnyArg(), rec.Name, string(rec.Request), string(rec.Response), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, sink.Save(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_Save_Error(t *testing.T) {
	sink, mock := setupPostgresSink(t)

	mock.ExpectExec(`INSERT INTO "search_backups"`).
		WillReturnError(errors.New("relation does not exist"))

	err := sink.Save(context.Background(), testRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert backup row")
}

func TestBackupRecord_BeforeCreate(t *testing.T) {
	row := &BackupRecord{}
	require.NoError(t, row.BeforeCreate(nil))
	assert.Len(t, row.ID, 26)

	existing := &BackupRecord{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV"}
	require.NoError(t, existing.BeforeCreate(nil))
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", existing.ID)
}
