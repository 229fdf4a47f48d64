package model

import "riverstay/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldIsAdmin   = "is_admin"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	IsAdmin   bool    `db:"is_admin"`
	LastLogin *string `db:"last_login"`
	model.Metadata
}
