package tablero

import (
	DB "Backend-Catequesis/src/database"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stats son los contadores por colección que muestra la página de inicio.
type Stats struct {
	Estudiantes   int64 `json:"estudiantes"`
	Grupos        int64 `json:"grupos"`
	Inscripciones int64 `json:"inscripciones"`
	Asistencias   int64 `json:"asistencias"`
	Eventos       int64 `json:"eventos"`
}

// GetStats cuenta los documentos de cada colección.
func GetStats() (*Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var stats Stats
	var err error

	count := func(col *mongo.Collection) int64 {
		if err != nil {
			return 0
		}
		var n int64
		n, err = col.CountDocuments(ctx, bson.M{})
		return n
	}

	stats.Estudiantes = count(DB.EstudianteCollection)
	stats.Grupos = count(DB.GrupoCollection)
	stats.Inscripciones = count(DB.InscripcionCollection)
	stats.Asistencias = count(DB.AsistenciaCollection)
	stats.Eventos = count(DB.EventoCollection)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}
