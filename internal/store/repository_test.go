package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// newMockDB wires a sqlmock connection into a *DB speaking PostgreSQL
// placeholders, so expectations can assert the exact SQL the repositories
// build.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:      conn,
		engine:  EnginePostgres,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger.Nop(),
	}, mock
}

func TestRepositoryFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, descricao, cadastrante_id FROM ambiente WHERE id = $1 ORDER BY id LIMIT 1`,
	)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "cadastrante_id"}).
			AddRow(int64(3), "Almoxarifado", int64(7)))

	environment, err := repository.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), environment.ID)
	assert.Equal(t, "Almoxarifado", environment.Description)
	assert.Equal(t, int64(7), environment.RegistrantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindReturnsErrNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, descricao, cadastrante_id FROM ambiente WHERE id = $1 ORDER BY id LIMIT 1`,
	)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "cadastrante_id"}))

	environment, err := repository.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, environment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, descricao, cadastrante_id FROM ambiente ORDER BY id`,
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "cadastrante_id"}).
			AddRow(int64(1), "Depósito", int64(7)).
			AddRow(int64(2), "Laboratório", int64(7)))

	environments, err := repository.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, environments, 2)
	assert.Equal(t, "Depósito", environments[0].Description)
	assert.Equal(t, "Laboratório", environments[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindAllBy(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), ItemBinding())

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, tipo_item_id, cadastrante_id, ambiente_atual_id FROM item WHERE ambiente_atual_id = $1 ORDER BY id`,
	)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tipo_item_id", "cadastrante_id", "ambiente_atual_id"}).
			AddRow(int64(10), int64(1), int64(7), int64(2)))

	items, err := repository.FindAllBy(context.Background(), "ambiente_atual_id", int64(2))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].ID)
	assert.Equal(t, int64(2), items[0].CurrentEnvironmentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryInsertAssignsIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO ambiente (descricao,cadastrante_id) VALUES ($1,$2) RETURNING id`,
	)).
		WithArgs("Recepção", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	environment, err := repository.Insert(context.Background(), &models.Environment{
		Description:  "Recepção",
		RegistrantID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), environment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryInsertRejectsAssignedIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	environment, err := repository.Insert(context.Background(), &models.Environment{
		ID:          3,
		Description: "Recepção",
	})
	assert.ErrorIs(t, err, ErrIdentityAlreadyAssigned)
	assert.Nil(t, environment)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL may reach the database")
}

func TestRepositoryUpdate(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "existing row", rowsAffected: 1, wantErr: nil},
		{name: "missing row", rowsAffected: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

			mock.ExpectExec(regexp.QuoteMeta(
				`UPDATE ambiente SET descricao = $1, cadastrante_id = $2 WHERE id = $3`,
			)).
				WithArgs("Recepção", int64(7), int64(5)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repository.Update(context.Background(), &models.Environment{
				ID:           5,
				Description:  "Recepção",
				RegistrantID: 7,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM ambiente WHERE id = $1`,
	)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteEntity(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), EnvironmentBinding())

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM ambiente WHERE id = $1`,
	)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.DeleteEntity(context.Background(), &models.Environment{ID: 9})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteReferencedRow(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewRepository(db, logger.Nop(), ItemBinding())

	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM item WHERE id = $1`,
	)).
		WithArgs(int64(11)).
		WillReturnError(&pgconn.PgError{
			Code:       pgerrcode.ForeignKeyViolation,
			ConstraintName: "movimentacao_item_id_fkey",
		})

	err := repository.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, ErrRowReferenced)
	assert.NotErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db, logger.Nop())

	birth := time.Date(1998, time.March, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, nome, email, data_nascimento, permissao, senha_hash, ativo FROM usuario WHERE LOWER(email) = $1 ORDER BY id LIMIT 1`,
	)).
		WithArgs("mateus@instoc.dev").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "data_nascimento", "permissao", "senha_hash", "ativo"}).
			AddRow(int64(7), "Mateus", "mateus@instoc.dev", birth, "ADMINISTRADOR", "$2a$10$hash", true))

	user, err := repository.FindByEmail(context.Background(), "Mateus@Instoc.DEV")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, models.PermissionAdministrator, user.Permission)
	assert.Equal(t, birth, user.BirthDate.Time)
	assert.True(t, user.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryInsertMapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO usuario (nome,email,data_nascimento,permissao,senha_hash,ativo) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
	)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	user, err := repository.Insert(context.Background(), &models.User{
		Name:       "Mateus",
		Email:      "mateus@instoc.dev",
		Permission: models.PermissionEmployee,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
