package persistence

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCategoryRepository creates a GormCategoryRepository backed by a
// mocked SQL connection, for exercising error paths SQLite cannot produce.
func newMockCategoryRepository(t *testing.T) (*GormCategoryRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewGormCategoryRepository(gormDB), mock, mockDB
}

func TestGormCategoryRepository_FindByID_Mock(t *testing.T) {
	t.Run("maps an empty result to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE category_id = \$1`).
			WithArgs(7, 1).
			WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}))

		_, err := repo.FindByID(testCtx(), 7)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the row when present", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"category_id", "category_name"}).
			AddRow(7, "Electronics")
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE category_id = \$1`).
			WithArgs(7, 1).
			WillReturnRows(rows)

		category, err := repo.FindByID(testCtx(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), category.ID)
		assert.Equal(t, "Electronics", category.Name)
	})
}

func TestGormCategoryRepository_FindAll_Mock(t *testing.T) {
	t.Run("propagates query errors", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		queryErr := errors.New("connection reset")
		mock.ExpectQuery(`SELECT \* FROM "categories"`).
			WillReturnError(queryErr)

		_, err := repo.FindAll(testCtx())
		assert.ErrorIs(t, err, queryErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
