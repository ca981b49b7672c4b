package model

import (
	"database/sql"
	"time"
)

type User struct {
	UUID         string         `db:"uuid" json:"uuid"`
	Email        string         `db:"email" json:"email"`
	FirstName    string         `db:"first_name" json:"firstName"`
	LastName     string         `db:"last_name" json:"lastName"`
	Address      string         `db:"address" json:"address"`
	Gender       string         `db:"gender" json:"gender"`
	PasswordHash string         `db:"password_hash" json:"-"`
	UserAvatar   sql.NullString `db:"user_avatar" json:"userAvatar,omitempty"`
	RefreshToken sql.NullString `db:"refresh_token" json:"-"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// FullName — отображаемое имя для claims access токена
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
