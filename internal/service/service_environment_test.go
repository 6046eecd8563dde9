package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

const (
	selectEnvironmentByID = `SELECT id, descricao, cadastrante_id FROM ambiente WHERE id = $1 ORDER BY id LIMIT 1`
	selectItemsInEnv      = `SELECT id, tipo_item_id, cadastrante_id, ambiente_atual_id FROM item WHERE ambiente_atual_id = $1 ORDER BY id`
	deleteEnvironment     = `DELETE FROM ambiente WHERE id = $1`
)

func environmentColumns() []string {
	return []string{"id", "descricao", "cadastrante_id"}
}

func itemColumns() []string {
	return []string{"id", "tipo_item_id", "cadastrante_id", "ambiente_atual_id"}
}

func TestEnvironmentDeleteRejectedWhileHoldingItems(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	environments := NewEnvironmentService(repositories, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectEnvironmentByID)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(environmentColumns()).AddRow(int64(3), "Almoxarifado", int64(7)))

	mock.ExpectQuery(regexp.QuoteMeta(selectItemsInEnv)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(itemColumns()).AddRow(int64(11), int64(1), int64(7), int64(3)))

	err := environments.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrEnvironmentNotEmpty)
	assert.NoError(t, mock.ExpectationsWereMet(), "no DELETE may reach the database")
}

func TestEnvironmentDeleteWhenEmpty(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	environments := NewEnvironmentService(repositories, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectEnvironmentByID)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(environmentColumns()).AddRow(int64(3), "Almoxarifado", int64(7)))

	mock.ExpectQuery(regexp.QuoteMeta(selectItemsInEnv)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	mock.ExpectExec(regexp.QuoteMeta(deleteEnvironment)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := environments.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvironmentDeleteRejectedWhileInMovementHistory(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	environments := NewEnvironmentService(repositories, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectEnvironmentByID)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(environmentColumns()).AddRow(int64(3), "Almoxarifado", int64(7)))

	mock.ExpectQuery(regexp.QuoteMeta(selectItemsInEnv)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	mock.ExpectExec(regexp.QuoteMeta(deleteEnvironment)).
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{
			Code:       pgerrcode.ForeignKeyViolation,
			ConstraintName: "movimentacao_ambiente_anterior_id_fkey",
		})

	err := environments.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrEnvironmentInHistory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvironmentDeleteUnknownID(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	environments := NewEnvironmentService(repositories, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectEnvironmentByID)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(environmentColumns()))

	err := environments.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvironmentCreateRequiresDescription(t *testing.T) {
	repositories, mock := newTestRepositories(t)
	environments := NewEnvironmentService(repositories, logger.Nop())

	saved, err := environments.Create(context.Background(), &models.Environment{}, 7)
	require.Error(t, err)
	assert.Nil(t, saved)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "descricao")
	assert.NoError(t, mock.ExpectationsWereMet())
}
