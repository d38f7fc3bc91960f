package asistencias

import (
	"Backend-Catequesis/src/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToView(t *testing.T) {
	f := time.Date(2024, 9, 7, 10, 30, 0, 0, time.UTC)

	t.Run("CamposCompletos", func(t *testing.T) {
		a := models.Asistencia{
			FechaSesion: f,
			Estado:      "Presente",
			Inscripcion: models.InscripcionRef{
				Estudiante: models.EstudianteRef{Nombre: "María José Andrade Paz"},
				Grupo:      models.GrupoRef{NombreGrupo: "Primera Comunión A"},
			},
		}

		v := ToView(a)
		assert.Equal(t, "María José Andrade Paz", v.EstudianteNombre)
		assert.Equal(t, "Primera Comunión A", v.GrupoNombre)
		assert.Equal(t, "2024-09-07 10:30", v.FechaSesionTxt)
	})

	t.Run("SnapshotLegacyUsaNombreGrupoViejo", func(t *testing.T) {
		// los snapshots previos a la migración guardaban el nombre bajo
		// la clave camelCase
		raw := bson.M{
			"estado": "Presente",
			"inscripcion": bson.M{
				"grupo": bson.M{"nombreGrupo": "Confirmación Legacy"},
			},
		}
		data, err := bson.Marshal(raw)
		require.NoError(t, err)

		var a models.Asistencia
		require.NoError(t, bson.Unmarshal(data, &a))

		v := ToView(a)
		assert.Equal(t, "Confirmación Legacy", v.GrupoNombre)
	})

	t.Run("SnapshotIncompletoUsaNA", func(t *testing.T) {
		// documentos viejos pueden traer el snapshot a medias
		a := models.Asistencia{Estado: "Presente"}

		v := ToView(a)
		assert.Equal(t, "N/A", v.EstudianteNombre)
		assert.Equal(t, "N/A", v.GrupoNombre)
		assert.Equal(t, "N/A", v.FechaSesionTxt)
	})
}
