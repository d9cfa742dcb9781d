// Package authenticating valida as sessões emitidas pelo provedor de
// identidade. Login e cadastro de usuários ficam fora deste serviço.
package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

// ValidateToken confere assinatura e validade do token e devolve as claims
// da sessão. Tokens sem usuário ou com papel desconhecido são recusados.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, codeFor(ErrMissingToken), "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, codeFor(ErrExpiredToken), "")
		}
		return nil, NewAuthError(ErrInvalidToken, codeFor(ErrInvalidToken), err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, codeFor(ErrInvalidToken), "")
	}

	if claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, codeFor(ErrInvalidToken), "token sem usuário")
	}
	if !claims.UserRole.IsValid() {
		return nil, NewUserAuthError(ErrInvalidToken, codeFor(ErrInvalidToken), claims.Subject, "papel desconhecido: "+string(claims.UserRole))
	}

	return claims, nil
}
