package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El ID (jti) identifica el token en la tabla access_tokens: si la fila no existe,
// el token fue revocado (logout) aunque la firma siga siendo válida.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID int64  `json:"usuario_id"`
	Permiso   string `json:"permiso"` // "admin" | "vendedor" | "usuario" | "empleado"
}

// Generate genera un token JWT firmado que incluye usuarioID, permiso y el jti dado.
func Generate(secret string, tokenID string, usuarioID int64, permiso, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   strconv.FormatInt(usuarioID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID: usuarioID,
		Permiso:   permiso,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve tokenID (jti), usuarioID y permiso.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (tokenID string, usuarioID int64, permiso string, err error) {
	if secret == "" {
		return "", 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", 0, "", fmt.Errorf("claims inválidos")
	}
	return claims.RegisteredClaims.ID, claims.UsuarioID, claims.Permiso, nil
}
