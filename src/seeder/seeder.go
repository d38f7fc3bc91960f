package seeder

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/services"
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedDatosEjemplo carga datos de muestra si las colecciones están vacías.
// A propósito mezcla las tres formas de _id (ObjectID, entero y string uuid)
// para que el sistema corra siempre contra claves heterogéneas.
func SeedDatosEjemplo() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := DB.EstudianteCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	fnac := time.Date(2012, 5, 20, 0, 0, 0, 0, time.UTC)
	estudiantes := []any{
		models.Estudiante{
			ID:              primitive.NewObjectID(),
			Cedula:          "1102233445",
			Nombres:         "María José",
			Apellidos:       "Andrade Paz",
			FechaNacimiento: &fnac,
			Direccion:       "Av. Quito y Sucre",
			Representante:   models.Representante{Nombre: "Rosa Paz", Telefono: "0991112233"},
		},
		models.Estudiante{
			// documento legacy con _id entero
			ID:            int64(1),
			Cedula:        "1105566778",
			Nombres:       "Luis",
			Apellidos:     "Zambrano Vera",
			Direccion:     "Calle Bolívar 4-12",
			Representante: models.Representante{Nombre: "Pedro Zambrano", Telefono: "0987654321"},
		},
		models.Estudiante{
			// documento importado con _id string opaco
			ID:        uuid.NewString(),
			Cedula:    "1109988776",
			Nombres:   "Ana Lucía",
			Apellidos: "Calle Mora",
			Direccion: "Barrio La Merced",
		},
	}
	if _, err := DB.EstudianteCollection.InsertMany(ctx, estudiantes); err != nil {
		return err
	}

	grupos := []any{
		models.Grupo{
			ID:          primitive.NewObjectID(),
			NombreGrupo: "Primera Comunión A",
			Horario:     "09:00",
			DiaReunion:  "Sábado",
			Estado:      "Activo",
		},
		models.Grupo{
			// grupo legacy: solo campos camelCase
			ID:           int64(1),
			Horario:      "10:00",
			Estado:       "Activo",
			NombreLegacy: "Confirmación Jóvenes",
			DiaLegacy:    "Domingo",
		},
	}
	if _, err := DB.GrupoCollection.InsertMany(ctx, grupos); err != nil {
		return err
	}

	fechaEvento := time.Now().AddDate(0, 1, 0)
	evento := models.Evento{
		ID:           primitive.NewObjectID(),
		NombreEvento: "Retiro de catequistas",
		Descripcion:  "Retiro anual de preparación",
		FechaEvento:  &fechaEvento,
		Parroquia: models.Parroquia{
			ID:     models.ParroquiaDefaultID,
			Nombre: models.ParroquiaDefaultNombre,
		},
	}
	if _, err := DB.EventoCollection.InsertOne(ctx, evento); err != nil {
		return err
	}

	log.Println("Datos de ejemplo cargados")
	return nil
}

// SeedCatequistaAdmin crea el operador inicial si no existe ninguno.
func SeedCatequistaAdmin(email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := DB.CatequistaCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	cat := models.Catequista{
		Nombre: "Coordinador",
		Email:  email,
		Rol:    "admin",
	}
	if err := services.CreateCatequista(&cat, password); err != nil {
		return err
	}

	log.Println("Catequista admin creado:", email)
	return nil
}
