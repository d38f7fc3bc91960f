package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParseJWT(t *testing.T) {
	token, err := GenerateJWT("64a1f2e3d4c5b6a798012345", "coordinador@parroquia.ec", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64a1f2e3d4c5b6a798012345", claims.CatequistaID)
	assert.Equal(t, "coordinador@parroquia.ec", claims.Email)
	assert.Equal(t, "admin", claims.Rol)
}

func TestParseJWTInvalido(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("no.es.un.token")
	assert.Error(t, err)
}
