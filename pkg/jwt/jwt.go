// Package jwt parsea los tokens de identidad emitidos por el proveedor externo.
// La aplicación no emite credenciales propias: el token llega ya firmado y de él
// solo interesa el par emisor/sujeto, con el que se construye el token identifier
// interno con forma "<issuer>|<external-user-id>".
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generate genera un token de identidad firmado (HS256) con issuer y subject.
// Se usa en entornos de desarrollo y en tests; en producción el token lo emite Clerk.
func Generate(secret, issuer, subject string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el token identifier "<issuer>|<subject>".
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Issuer == "" || claims.Subject == "" {
		return "", fmt.Errorf("token sin issuer o subject")
	}
	return claims.Issuer + "|" + claims.Subject, nil
}
