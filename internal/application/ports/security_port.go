package ports

import "github.com/jhoicas/inventario-equipos/pkg/jwt"

// PasswordHasher define el puerto para hashear y verificar contraseñas.
// Verify nunca falla con error: un hash malformado simplemente no coincide.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer emite el token de acceso para un usuario autenticado.
type TokenIssuer interface {
	Issue(sub jwt.Subject) (string, error)
}

// TokenVerifier valida un token y devuelve la identidad que contiene.
type TokenVerifier interface {
	Verify(token string) (jwt.Subject, error)
}
