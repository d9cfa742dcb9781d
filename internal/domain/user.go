package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBusinessOwner Role = "business_owner"
	RoleUser          Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBusinessOwner, RoleUser:
		return true
	}
	return false
}

// Claims são as informações de sessão emitidas pelo provedor de identidade.
// O ID do usuário vem no campo "sub".
type Claims struct {
	UserEmail string `json:"email"`
	UserRole  Role   `json:"role"`
	jwt.RegisteredClaims
}

// Actor identifica quem executa uma operação de destaque
type Actor struct {
	UserID string
	Role   Role
}

func (c *Claims) Actor() Actor {
	return Actor{UserID: c.Subject, Role: c.UserRole}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
