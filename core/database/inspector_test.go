package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func showColumns(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "VARCHAR(255)", "YES", "", nil, "")
	}
	return rows
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `cmdb_ci`")).
		WillReturnRows(showColumns("Name", "sys_id"))

	columns, err := GetTableColumns(db, "cmdb_ci")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "name", columns[0].Field)
	assert.Equal(t, "varchar(255)", columns[0].Type)
	assert.Equal(t, "sys_id", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_Errors(t *testing.T) {
	t.Run("QueryError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `missing`")).
			WillReturnError(errors.New("table doesn't exist"))

		_, err := GetTableColumns(db, "missing")
		assert.Error(t, err)
	})

	t.Run("NoColumns", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `empty`")).
			WillReturnRows(showColumns())

		_, err := GetTableColumns(db, "empty")
		assert.Error(t, err)
	})
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `cmn_location`")).
		WillReturnRows(showColumns("name", "City", "country"))

	missing, err := MissingColumns(db, "cmn_location", []string{"name", "city", "state", "", "latitude"})
	require.NoError(t, err)

	assert.Equal(t, []string{"state", "latitude"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
