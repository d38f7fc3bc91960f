package estudiantes

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

// CreateEstudiante inserta un estudiante nuevo.
func CreateEstudiante(e *models.Estudiante) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if e.ID == nil {
		e.ID = primitive.NewObjectID()
	}
	_, err := DB.EstudianteCollection.InsertOne(ctx, e)
	return err
}

// GetEstudiantes devuelve todos los estudiantes ordenados por apellidos.
func GetEstudiantes() ([]models.Estudiante, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "apellidos", Value: 1}})
	cursor, err := DB.EstudianteCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var estudiantes []models.Estudiante
	if err := cursor.All(ctx, &estudiantes); err != nil {
		return nil, err
	}
	return estudiantes, nil
}

// GetEstudianteByKey busca por la clave ya normalizada. Devuelve
// mongo.ErrNoDocuments si no existe.
func GetEstudianteByKey(key utils.DocKey) (*models.Estudiante, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	var e models.Estudiante
	err := DB.EstudianteCollection.FindOne(ctx, bson.M{"_id": key.Value()}).Decode(&e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEstudiante aplica un $set parcial con los campos editables.
func UpdateEstudiante(key utils.DocKey, e *models.Estudiante) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	update := bson.M{"$set": bson.M{
		"cedula":           e.Cedula,
		"nombres":          e.Nombres,
		"apellidos":        e.Apellidos,
		"fecha_nacimiento": e.FechaNacimiento,
		"direccion":        e.Direccion,
		"representante":    e.Representante,
	}}

	_, err := DB.EstudianteCollection.UpdateOne(ctx, bson.M{"_id": key.Value()}, update)
	return err
}

// DeleteEstudiante borra el estudiante y, antes, todas las inscripciones que
// lo referencian en su snapshot (cascada). Borrar un id inexistente no es error.
func DeleteEstudiante(key utils.DocKey) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if _, err := DB.InscripcionCollection.DeleteMany(ctx, bson.M{"estudiante._id": key.Value()}); err != nil {
		return err
	}

	_, err := DB.EstudianteCollection.DeleteOne(ctx, bson.M{"_id": key.Value()})
	return err
}
