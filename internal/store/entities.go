package store

import (
	"github.com/Mateus-A-Soares/Instoc/models"
)

// Bindings for every persisted entity type. Each binding is the complete
// table mapping the generic [Repository] needs; nothing else in the package
// knows entity-specific SQL.

// UserBinding maps [models.User] onto the "usuario" table.
func UserBinding() Binding[*models.User] {
	return Binding[*models.User]{
		Table:   (&models.User{}).TableName(),
		Columns: []string{"id", "nome", "email", "data_nascimento", "permissao", "senha_hash", "ativo"},
		Scan: func(row RowScanner) (*models.User, error) {
			user := &models.User{}
			err := row.Scan(&user.ID, &user.Name, &user.Email, &user.BirthDate.Time, &user.Permission, &user.PasswordHash, &user.Active)
			return user, err
		},
		Values: func(user *models.User) []any {
			return []any{user.Name, user.Email, user.BirthDate.Time, user.Permission, user.PasswordHash, user.Active}
		},
	}
}

// EnvironmentBinding maps [models.Environment] onto the "ambiente" table.
func EnvironmentBinding() Binding[*models.Environment] {
	return Binding[*models.Environment]{
		Table:   (&models.Environment{}).TableName(),
		Columns: []string{"id", "descricao", "cadastrante_id"},
		Scan: func(row RowScanner) (*models.Environment, error) {
			environment := &models.Environment{}
			err := row.Scan(&environment.ID, &environment.Description, &environment.RegistrantID)
			return environment, err
		},
		Values: func(environment *models.Environment) []any {
			return []any{environment.Description, environment.RegistrantID}
		},
	}
}

// ItemBinding maps [models.Item] onto the "item" table.
func ItemBinding() Binding[*models.Item] {
	return Binding[*models.Item]{
		Table:   (&models.Item{}).TableName(),
		Columns: []string{"id", "tipo_item_id", "cadastrante_id", "ambiente_atual_id"},
		Scan: func(row RowScanner) (*models.Item, error) {
			item := &models.Item{}
			err := row.Scan(&item.ID, &item.TypeID, &item.RegistrantID, &item.CurrentEnvironmentID)
			return item, err
		},
		Values: func(item *models.Item) []any {
			return []any{item.TypeID, item.RegistrantID, item.CurrentEnvironmentID}
		},
	}
}

// ItemTypeBinding maps [models.ItemType] onto the "tipo_item" table.
func ItemTypeBinding() Binding[*models.ItemType] {
	return Binding[*models.ItemType]{
		Table:   (&models.ItemType{}).TableName(),
		Columns: []string{"id", "nome", "cadastrante_id"},
		Scan: func(row RowScanner) (*models.ItemType, error) {
			itemType := &models.ItemType{}
			err := row.Scan(&itemType.ID, &itemType.Name, &itemType.RegistrantID)
			return itemType, err
		},
		Values: func(itemType *models.ItemType) []any {
			return []any{itemType.Name, itemType.RegistrantID}
		},
	}
}

// ItemTypeTagBinding maps [models.ItemTypeTag] onto the "tipo_item_tag"
// table.
func ItemTypeTagBinding() Binding[*models.ItemTypeTag] {
	return Binding[*models.ItemTypeTag]{
		Table:   (&models.ItemTypeTag{}).TableName(),
		Columns: []string{"id", "cabecalho", "corpo", "tipo", "tipo_item_id"},
		Scan: func(row RowScanner) (*models.ItemTypeTag, error) {
			tag := &models.ItemTypeTag{}
			err := row.Scan(&tag.ID, &tag.Header, &tag.Body, &tag.Kind, &tag.ItemTypeID)
			return tag, err
		},
		Values: func(tag *models.ItemTypeTag) []any {
			return []any{tag.Header, tag.Body, tag.Kind, tag.ItemTypeID}
		},
	}
}

// MovementBinding maps [models.Movement] onto the "movimentacao" table.
func MovementBinding() Binding[*models.Movement] {
	return Binding[*models.Movement]{
		Table:   (&models.Movement{}).TableName(),
		Columns: []string{"id", "data_movimentacao", "item_id", "ambiente_anterior_id", "ambiente_posterior_id", "movimentador_id"},
		Scan: func(row RowScanner) (*models.Movement, error) {
			movement := &models.Movement{}
			err := row.Scan(&movement.ID, &movement.MovedAt, &movement.ItemID, &movement.PreviousEnvironmentID, &movement.NextEnvironmentID, &movement.MoverID)
			return movement, err
		},
		Values: func(movement *models.Movement) []any {
			return []any{movement.MovedAt, movement.ItemID, movement.PreviousEnvironmentID, movement.NextEnvironmentID, movement.MoverID}
		},
	}
}
