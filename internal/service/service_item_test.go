package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
)

const deleteItem = `DELETE FROM item WHERE id = $1`

func TestItemDelete(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	items := NewItemService(repositories, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteItem)).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := items.Delete(context.Background(), 11)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemDeleteUnknownID(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	items := NewItemService(repositories, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteItem)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := items.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemDeleteRejectedWhileInMovementHistory(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	items := NewItemService(repositories, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteItem)).
		WithArgs(int64(11)).
		WillReturnError(&pgconn.PgError{
			Code:       pgerrcode.ForeignKeyViolation,
			ConstraintName: "movimentacao_item_id_fkey",
		})

	err := items.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, ErrItemHasMovements)
	assert.NoError(t, mock.ExpectationsWereMet())
}
