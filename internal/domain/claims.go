package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims del token emitido por el servicio de sesiones; la
// autenticación vive en ese colaborador, aquí solo se validan y se usan
// para el control de roles.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
