package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/componentes-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testIssuer  = "componentes-api-test"
	testSubject = "8a1f0c7e-2b7d-4a53-9f65-3f0a9c1d2e4b"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	now := time.Now()
	tok, err := pkgjwt.Generate(testSecret, testSubject, "bodeguero", testIssuer, now, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok, nil)
	require.NoError(t, err)
	assert.Equal(t, testSubject, claims.Subject)
	assert.Equal(t, testSubject, claims.ID)
	assert.Equal(t, "bodeguero", claims.Role)
}

func TestParse_TokenExpirado(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, issued, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok, nil)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_RelojInyectado(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, issued, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok, func() time.Time { return issued.Add(30 * time.Minute) })
	assert.NoError(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", testIssuer, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok, nil)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestParse_EmisorIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "admin", "otro-emisor", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok, nil)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject, "admin", testIssuer, time.Now(), time.Hour)
	assert.Error(t, err)
}
