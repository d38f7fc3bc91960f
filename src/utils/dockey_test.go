package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseDocKeyObjectID(t *testing.T) {
	t.Run("HexDe24Caracteres", func(t *testing.T) {
		hex := "64a1f2e3d4c5b6a798012345"
		key := ParseDocKey(hex)

		require.Equal(t, KeyObjectID, key.Kind)

		esperado, err := primitive.ObjectIDFromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, esperado, key.OID)
		assert.Equal(t, esperado, key.Value())
		assert.Equal(t, hex, key.String())
	})

	t.Run("MayusculasTambienSonHex", func(t *testing.T) {
		hex := "64A1F2E3D4C5B6A798012345"
		key := ParseDocKey(hex)

		require.Equal(t, KeyObjectID, key.Kind)
		esperado, err := primitive.ObjectIDFromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, esperado, key.OID)
	})

	t.Run("ConEspaciosAlrededor", func(t *testing.T) {
		key := ParseDocKey("  64a1f2e3d4c5b6a798012345  ")
		assert.Equal(t, KeyObjectID, key.Kind)
	})

	t.Run("23HexNoEsObjectID", func(t *testing.T) {
		key := ParseDocKey("64a1f2e3d4c5b6a79801234")
		assert.Equal(t, KeyOpaque, key.Kind)
	})

	t.Run("25HexNoEsObjectID", func(t *testing.T) {
		key := ParseDocKey("64a1f2e3d4c5b6a7980123456")
		assert.Equal(t, KeyOpaque, key.Kind)
	})
}

func TestParseDocKeyEntero(t *testing.T) {
	t.Run("SoloDigitos", func(t *testing.T) {
		key := ParseDocKey("42")
		require.Equal(t, KeyInt, key.Kind)
		assert.Equal(t, int64(42), key.Num)
		assert.Equal(t, int64(42), key.Value())
		assert.Equal(t, "42", key.String())
	})

	t.Run("CerosALaIzquierda", func(t *testing.T) {
		key := ParseDocKey("0012")
		require.Equal(t, KeyInt, key.Kind)
		assert.Equal(t, int64(12), key.Num)
	})

	t.Run("DigitoConSigno", func(t *testing.T) {
		// "-5" no es solo dígitos: queda como string
		key := ParseDocKey("-5")
		assert.Equal(t, KeyOpaque, key.Kind)
		assert.Equal(t, "-5", key.Value())
	})

	t.Run("DigitosQueNoCabenEnInt64", func(t *testing.T) {
		key := ParseDocKey("99999999999999999999999999")
		assert.Equal(t, KeyOpaque, key.Kind)
	})
}

func TestParseDocKeyString(t *testing.T) {
	t.Run("CasoGeneral", func(t *testing.T) {
		key := ParseDocKey("abc-123")
		require.Equal(t, KeyOpaque, key.Kind)
		assert.Equal(t, "abc-123", key.Raw)
		assert.Equal(t, "abc-123", key.Value())
		assert.Equal(t, "abc-123", key.String())
	})

	t.Run("RecortaEspacios", func(t *testing.T) {
		key := ParseDocKey("  clave-x  ")
		assert.Equal(t, "clave-x", key.Value())
	})

	t.Run("VacioSigueSiendoString", func(t *testing.T) {
		// nunca hay error: un string vacío simplemente no matchea nada
		key := ParseDocKey("")
		assert.Equal(t, KeyOpaque, key.Kind)
		assert.Equal(t, "", key.Value())
	})
}

func TestKeyString(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, oid.Hex(), KeyString(oid))
	assert.Equal(t, "7", KeyString(int64(7)))
	assert.Equal(t, "7", KeyString(int32(7)))
	assert.Equal(t, "7", KeyString(7))
	assert.Equal(t, "uuid-x", KeyString("uuid-x"))
	assert.Equal(t, "", KeyString(nil))
}

func TestParseDocKeyRoundTrip(t *testing.T) {
	// la forma de URL de una clave se vuelve a normalizar a la misma clave
	casos := []string{"64a1f2e3d4c5b6a798012345", "42", "clave-opaca"}
	for _, c := range casos {
		key := ParseDocKey(c)
		assert.Equal(t, key.Value(), ParseDocKey(key.String()).Value(), c)
	}
}
