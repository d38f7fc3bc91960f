package grupos

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/utils"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ctxTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// CreateGrupo inserta un grupo; estado vacío queda "Activo".
func CreateGrupo(g *models.Grupo) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if g.ID == nil {
		g.ID = primitive.NewObjectID()
	}
	if g.Estado == "" {
		g.Estado = "Activo"
	}
	_, err := DB.GrupoCollection.InsertOne(ctx, g)
	return err
}

// GetGrupos devuelve todos los grupos ordenados por nombre. El orden se hace
// en memoria porque el nombre puede vivir en nombre_grupo o en el legacy
// nombreGrupo y el sort del servidor solo ve un campo.
func GetGrupos() ([]models.Grupo, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	cursor, err := DB.GrupoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grupos []models.Grupo
	if err := cursor.All(ctx, &grupos); err != nil {
		return nil, err
	}

	OrdenarPorNombre(grupos)
	return grupos, nil
}

// OrdenarPorNombre ordena in-place por el nombre con fallback legacy.
func OrdenarPorNombre(grupos []models.Grupo) {
	sort.SliceStable(grupos, func(i, j int) bool {
		return grupos[i].Nombre() < grupos[j].Nombre()
	})
}

// GetGrupoByKey busca por clave normalizada.
func GetGrupoByKey(key utils.DocKey) (*models.Grupo, error) {
	ctx, cancel := ctxTimeout()
	defer cancel()

	var g models.Grupo
	err := DB.GrupoCollection.FindOne(ctx, bson.M{"_id": key.Value()}).Decode(&g)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGrupo aplica un $set parcial con los campos editables.
func UpdateGrupo(key utils.DocKey, g *models.Grupo) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if g.Estado == "" {
		g.Estado = "Activo"
	}
	update := bson.M{"$set": bson.M{
		"nombre_grupo": g.NombreGrupo,
		"horario":      g.Horario,
		"dia_reunion":  g.DiaReunion,
		"estado":       g.Estado,
	}}

	_, err := DB.GrupoCollection.UpdateOne(ctx, bson.M{"_id": key.Value()}, update)
	return err
}

// DeleteGrupo borra el grupo y antes sus inscripciones (cascada sobre el
// snapshot grupo._id). Idempotente.
func DeleteGrupo(key utils.DocKey) error {
	ctx, cancel := ctxTimeout()
	defer cancel()

	if _, err := DB.InscripcionCollection.DeleteMany(ctx, bson.M{"grupo._id": key.Value()}); err != nil {
		return err
	}

	_, err := DB.GrupoCollection.DeleteOne(ctx, bson.M{"_id": key.Value()})
	return err
}
