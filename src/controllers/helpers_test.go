package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestFetchError(t *testing.T) {
	app := fiber.New()
	app.Get("/no-doc", func(c *fiber.Ctx) error {
		return fetchError(c, mongo.ErrNoDocuments, "Estudiante no encontrado")
	})
	app.Get("/otro", func(c *fiber.Ctx) error {
		return fetchError(c, errors.New("se cayó el socket"), "Estudiante no encontrado")
	})

	t.Run("DocumentoInexistenteEs404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/no-doc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, false, payload["ok"])
		assert.Equal(t, "Estudiante no encontrado", payload["error"])
	})

	t.Run("CualquierOtroErrorEs500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/otro", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, false, payload["ok"])
	})
}
