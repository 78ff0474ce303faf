package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventario-equipos/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "inventario-test"
)

func newManager(t *testing.T) *pkgjwt.Manager {
	t.Helper()
	m, err := pkgjwt.New(testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	return m
}

func TestNew_ValidaParametros(t *testing.T) {
	_, err := pkgjwt.New("", time.Hour, testIssuer)
	assert.Error(t, err, "secret vacío debe rechazarse")

	_, err = pkgjwt.New(testSecret, 0, testIssuer)
	assert.Error(t, err, "vigencia cero debe rechazarse")
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newManager(t)

	tok, err := m.Issue(pkgjwt.Subject{UserID: testUserID, Role: "Administrador"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, sub.UserID)
	assert.Equal(t, "Administrador", sub.Role)
}

func TestIssue_DosTokensDelMismoSujetoVerifican(t *testing.T) {
	m := newManager(t)
	sub := pkgjwt.Subject{UserID: testUserID, Role: "Docente"}

	a, err := m.Issue(sub)
	require.NoError(t, err)
	later := m.WithClock(func() time.Time { return time.Now().Add(2 * time.Second) })
	b, err := later.Issue(sub)
	require.NoError(t, err)

	for _, tok := range []string{a, b} {
		got, err := m.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, sub, got)
	}
}

func TestIssue_SinUserID(t *testing.T) {
	_, err := newManager(t).Issue(pkgjwt.Subject{Role: "Docente"})
	assert.Error(t, err)
}

func TestVerify_TokenExpirado(t *testing.T) {
	m := newManager(t)
	past := m.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })

	tok, err := past.Issue(pkgjwt.Subject{UserID: testUserID, Role: "Administrador"})
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_SecretIncorrecto(t *testing.T) {
	tok, err := newManager(t).Issue(pkgjwt.Subject{UserID: testUserID, Role: "Administrador"})
	require.NoError(t, err)

	other, err := pkgjwt.New("otro-secret-completamente-distinto", time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_PayloadAlterado(t *testing.T) {
	m := newManager(t)
	tok, err := m.Issue(pkgjwt.Subject{UserID: testUserID, Role: "Docente"})
	require.NoError(t, err)

	// Se firma otro payload (rol Administrador) y se injerta en el token original.
	forged, err := m.Issue(pkgjwt.Subject{UserID: testUserID, Role: "Administrador"})
	require.NoError(t, err)
	parts := strings.Split(tok, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_Malformado(t *testing.T) {
	m := newManager(t)
	for _, tok := range []string{"", "abc", "token.invalido.aqui"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_AlgoritmoNone(t *testing.T) {
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           testUserID,
		Role:             "Administrador",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newManager(t).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_SinExpiracion(t *testing.T) {
	claims := pkgjwt.Claims{UserID: testUserID, Role: "Administrador"}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newManager(t).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}
