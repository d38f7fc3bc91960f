package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "actual", FirstNonEmpty("actual", "legacy"))
	assert.Equal(t, "legacy", FirstNonEmpty("", "legacy"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.Equal(t, "", FirstNonEmpty())
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "Pedro", OrNA("Pedro"))
	assert.Equal(t, "N/A", OrNA(""))
}

func TestFormatFecha(t *testing.T) {
	f := time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2005-03-14", FormatFecha(&f))
	assert.Equal(t, "N/A", FormatFecha(nil))

	cero := time.Time{}
	assert.Equal(t, "N/A", FormatFecha(&cero))
}

func TestFormatFechaHora(t *testing.T) {
	f := time.Date(2024, 9, 7, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-09-07 10:30", FormatFechaHora(&f))
	assert.Equal(t, "N/A", FormatFechaHora(nil))
}

func TestParseFecha(t *testing.T) {
	f, err := ParseFecha("2005-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2005, f.Year())
	assert.Equal(t, time.March, f.Month())
	assert.Equal(t, 14, f.Day())

	// el valor guardado vuelve a renderizar igual
	assert.Equal(t, "2005-03-14", FormatFecha(&f))

	_, err = ParseFecha("14/03/2005")
	assert.Error(t, err)

	_, err = ParseFecha("")
	assert.Error(t, err)
}
