package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	RoleID uint   `json:"role_id"`
	jwt.RegisteredClaims
}
