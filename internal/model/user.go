package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User - игрок. Password хранит bcrypt-хеш
type User struct {
	ID       int
	Name     string
	Phone    string // Используется как логин
	Password string
	Account  Account
}

// UserClaims - claims access токена, ID игрока лежит в Subject
type UserClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
