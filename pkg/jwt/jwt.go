package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken agrupa cualquier fallo de verificación: firma, formato o expiración.
var ErrInvalidToken = errors.New("jwt: token inválido")

// Claims incluye los claims estándar JWT más la identidad y el rol del usuario.
// El rol viaja en el token para que el middleware de roles no consulte la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"rol"`
}

// Subject identidad que se firma en el token y se recupera al verificarlo.
type Subject struct {
	UserID string
	Role   string
}

// Manager emite y verifica tokens HS256 con un secreto inyectado en construcción.
// No hay revocación: un token es válido hasta su expiración aunque el usuario cambie.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// New construye el Manager. El secreto no puede ser vacío y la vigencia debe ser positiva.
func New(secret string, ttl time.Duration, issuer string) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: vigencia inválida %s", ttl)
	}
	return &Manager{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}, nil
}

// WithClock reemplaza el reloj usado para emitir y verificar (tests).
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// Issue genera un token firmado para el sujeto.
func (m *Manager) Issue(sub Subject) (string, error) {
	if sub.UserID == "" {
		return "", fmt.Errorf("jwt: sujeto sin id")
	}
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: sub.UserID,
		Role:   sub.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida firma, formato y expiración y devuelve el sujeto del token.
// Todos los fallos envuelven ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (Subject, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return Subject{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return Subject{}, fmt.Errorf("%w: claims incompletos", ErrInvalidToken)
	}
	return Subject{UserID: claims.UserID, Role: claims.Role}, nil
}
