package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/comandas-api/pkg/jwt"
)

const testSecret = "secret-de-test"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, 42, "marta", "comandas-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "marta", username)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, 1, "nico", "comandas-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	require.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, 1, "nico", "comandas-api", -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	require.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "no.es.un.jwt")
	require.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 1, "nico", "comandas-api", 60)
	require.Error(t, err)

	_, _, err = jwt.Parse("", "lo-que-sea")
	require.Error(t, err)
}
