package eventos

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/utils"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ctxTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// EventoView agrega la fecha ya formateada para la vista.
type EventoView struct {
	models.Evento
	FechaTxt string
}

// CreateEvento inserta un evento nuevo.
func CreateEvento(e *models.Evento) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if e.ID == nil {
		e.ID = primitive.NewObjectID()
	}
	if e.Parroquia.ID == 0 {
		e.Parroquia.ID = models.ParroquiaDefaultID
	}
	if e.Parroquia.Nombre == "" {
		e.Parroquia.Nombre = models.ParroquiaDefaultNombre
	}
	_, err := DB.EventoCollection.InsertOne(ctx, e)
	return err
}

// GetEventos devuelve todos los eventos ordenados por fecha. El orden se hace
// en memoria: la fecha puede vivir en fecha_evento o en el legacy fechaEvento,
// y un evento sin fecha ordena primero (centinela de tiempo cero).
func GetEventos() ([]EventoView, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	cursor, err := DB.EventoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var eventos []models.Evento
	if err := cursor.All(ctx, &eventos); err != nil {
		return nil, err
	}

	OrdenarPorFecha(eventos)
	return conFechaTxt(eventos), nil
}

// OrdenarPorFecha ordena in-place por la fecha con fallback y centinela.
func OrdenarPorFecha(eventos []models.Evento) {
	sort.SliceStable(eventos, func(i, j int) bool {
		return eventos[i].FechaOrden().Before(eventos[j].FechaOrden())
	})
}

// GetProximosEventos devuelve los próximos n eventos por fecha ascendente,
// para el tablero de inicio.
func GetProximosEventos(n int) ([]EventoView, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "fecha_evento", Value: 1}}).
		SetLimit(int64(n))
	cursor, err := DB.EventoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var eventos []models.Evento
	if err := cursor.All(ctx, &eventos); err != nil {
		return nil, err
	}
	return conFechaTxt(eventos), nil
}

func conFechaTxt(eventos []models.Evento) []EventoView {
	vistas := make([]EventoView, 0, len(eventos))
	for _, e := range eventos {
		vistas = append(vistas, EventoView{
			Evento:   e,
			FechaTxt: utils.FormatFecha(e.Fecha()),
		})
	}
	return vistas
}

// GetEventoByKey busca por clave normalizada.
func GetEventoByKey(key utils.DocKey) (*models.Evento, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	var e models.Evento
	err := DB.EventoCollection.FindOne(ctx, bson.M{"_id": key.Value()}).Decode(&e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvento aplica un $set parcial con los campos editables.
func UpdateEvento(key utils.DocKey, e *models.Evento) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if e.Parroquia.ID == 0 {
		e.Parroquia.ID = models.ParroquiaDefaultID
	}
	if e.Parroquia.Nombre == "" {
		e.Parroquia.Nombre = models.ParroquiaDefaultNombre
	}
	update := bson.M{"$set": bson.M{
		"nombre_evento": e.NombreEvento,
		"descripcion":   e.Descripcion,
		"fecha_evento":  e.FechaEvento,
		"parroquia":     e.Parroquia,
	}}

	_, err := DB.EventoCollection.UpdateOne(ctx, bson.M{"_id": key.Value()}, update)
	return err
}

// DeleteEvento borra el evento; no hay cascada. Idempotente.
func DeleteEvento(key utils.DocKey) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	_, err := DB.EventoCollection.DeleteOne(ctx, bson.M{"_id": key.Value()})
	return err
}
