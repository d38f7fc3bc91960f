package asistencias

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

// GetAsistencias devuelve todas las asistencias con sus campos de vista,
// las sesiones más recientes primero.
func GetAsistencias() ([]models.AsistenciaView, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fecha_sesion", Value: -1}})
	cursor, err := DB.AsistenciaCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []models.Asistencia
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	vistas := make([]models.AsistenciaView, 0, len(raw))
	for _, a := range raw {
		vistas = append(vistas, ToView(a))
	}
	return vistas, nil
}

// ToView calcula los campos seguros para mostrar: nombre y grupo del snapshot
// con "N/A" si faltan, y la fecha de sesión como texto. Se recalcula en cada
// request; nada de esto se persiste.
func ToView(a models.Asistencia) models.AsistenciaView {
	f := a.FechaSesion
	return models.AsistenciaView{
		Asistencia:       a,
		EstudianteNombre: utils.OrNA(a.Inscripcion.Estudiante.Nombre),
		GrupoNombre:      utils.OrNA(a.Inscripcion.Grupo.Nombre()),
		FechaSesionTxt:   utils.FormatFechaHora(&f),
	}
}

// GetAsistenciaByKey busca por clave normalizada.
func GetAsistenciaByKey(key utils.DocKey) (*models.Asistencia, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	var a models.Asistencia
	err := DB.AsistenciaCollection.FindOne(ctx, bson.M{"_id": key.Value()}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAsistencia registra una sesión snapshoteando la inscripción padre.
func CreateAsistencia(insc *models.Inscripcion, estado string) (*models.Asistencia, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	a := models.NewAsistencia(insc, estado)
	a.ID = primitive.NewObjectID()

	if _, err := DB.AsistenciaCollection.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateEstado cambia solo el estado de la asistencia; el snapshot embebido
// no se toca nunca.
func UpdateEstado(key utils.DocKey, estado string) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if estado == "" {
		estado = "Presente"
	}
	update := bson.M{"$set": bson.M{"estado": estado}}
	_, err := DB.AsistenciaCollection.UpdateOne(ctx, bson.M{"_id": key.Value()}, update)
	return err
}

// DeleteAsistencia borra la asistencia; nada la referencia, así que no hay
// cascada. Idempotente.
func DeleteAsistencia(key utils.DocKey) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	_, err := DB.AsistenciaCollection.DeleteOne(ctx, bson.M{"_id": key.Value()})
	return err
}
