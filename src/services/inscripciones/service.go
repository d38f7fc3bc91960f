package inscripciones

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/utils"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ctxTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// GetInscripciones devuelve todas las inscripciones, las más recientes primero.
func GetInscripciones() ([]models.Inscripcion, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fecha_inscripcion", Value: -1}})
	cursor, err := DB.InscripcionCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inscripciones []models.Inscripcion
	if err := cursor.All(ctx, &inscripciones); err != nil {
		return nil, err
	}
	return inscripciones, nil
}

// GetInscripcionByKey busca por clave normalizada.
func GetInscripcionByKey(key utils.DocKey) (*models.Inscripcion, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	var insc models.Inscripcion
	err := DB.InscripcionCollection.FindOne(ctx, bson.M{"_id": key.Value()}).Decode(&insc)
	if err != nil {
		return nil, err
	}
	return &insc, nil
}

// CreateInscripcion snapshotea estudiante y grupo tal como están ahora y
// guarda la matrícula. Las ediciones posteriores de cualquiera de los dos no
// tocan este documento.
func CreateInscripcion(e *models.Estudiante, g *models.Grupo, estado string) (*models.Inscripcion, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	insc := models.NewInscripcion(e, g, estado)
	insc.ID = primitive.NewObjectID()

	if _, err := DB.InscripcionCollection.InsertOne(ctx, insc); err != nil {
		return nil, err
	}
	return &insc, nil
}
