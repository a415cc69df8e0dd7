package goal

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/testutil"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

const (
	upsertSQL = `INSERT INTO "goals" \("id","user_id","category_id","amount","month","created_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) ` +
		`ON CONFLICT \("user_id","category_id","month"\) DO UPDATE SET "amount"="excluded"."amount"`
	reloadSQL = `SELECT \* FROM "goals" WHERE user_id = \$1 AND category_id = \$2 AND month = \$3`
)

func TestRepositoryUpsert(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewRepository(db)

	userID, categoryID := uuid.New(), uuid.New()
	month := util.MustParseDate("2025-03-01")
	storedID := uuid.New()
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	expectUpsert := func(id uuid.UUID, amount string) {
		mock.ExpectExec(upsertSQL).
			WithArgs(id, userID, categoryID, decimal.RequireFromString(amount), month, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(reloadSQL).
			WithArgs(userID, categoryID, month, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "amount", "month", "created_at"}).
				AddRow(storedID.String(), userID.String(), categoryID.String(), amount, "2025-03-01", created))
	}

	expectUpsert(storedID, "800.00")
	first, err := repo.Upsert(context.Background(), &Goal{
		ID: storedID, UserID: userID, CategoryID: categoryID,
		Amount: decimal.RequireFromString("800.00"), Month: month,
	})
	require.NoError(t, err)
	assert.Equal(t, storedID, first.ID)

	// A second write for the same key carries a fresh id but lands on
	// the stored row.
	retryID := uuid.New()
	expectUpsert(retryID, "950.50")
	second, err := repo.Upsert(context.Background(), &Goal{
		ID: retryID, UserID: userID, CategoryID: categoryID,
		Amount: decimal.RequireFromString("950.50"), Month: month,
	})
	require.NoError(t, err)
	assert.Equal(t, storedID, second.ID)
	assert.True(t, decimal.RequireFromString("950.50").Equal(second.Amount))
	assert.True(t, month.Equal(second.Month))
}

func TestRepositoryDeleteScopedToOwner(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewRepository(db)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "goals" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}
