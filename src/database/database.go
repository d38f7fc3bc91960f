package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	dbName     string
	once       sync.Once // una sola conexión por proceso
	connectErr error

	EstudianteCollection  *mongo.Collection
	GrupoCollection       *mongo.Collection
	InscripcionCollection *mongo.Collection
	AsistenciaCollection  *mongo.Collection
	EventoCollection      *mongo.Collection
	CatequistaCollection  *mongo.Collection
)

// ConnectMongoDB abre la conexión a MongoDB una sola vez y resuelve las
// colecciones que usa todo el sistema.
func ConnectMongoDB() error {

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no se encontró archivo .env")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI no está definida. Crea un .env y configúrala.")
	}

	dbName = os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "catequesis"
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Error conectando a MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB no responde al ping:", connectErr)
			return
		}

		db := client.Database(dbName)
		EstudianteCollection = db.Collection("estudiantes")
		GrupoCollection = db.Collection("grupos")
		InscripcionCollection = db.Collection("inscripciones")
		AsistenciaCollection = db.Collection("asistencias")
		EventoCollection = db.Collection("eventos")
		CatequistaCollection = db.Collection("catequistas")

		log.Println("MongoDB conectado, base:", dbName)
	})

	return connectErr
}

// DBName devuelve el nombre de la base configurada.
func DBName() string {
	return dbName
}

// ListCollectionNames lista las colecciones de la base; lo usa /ping como
// prueba rápida de conexión.
func ListCollectionNames(ctx context.Context) ([]string, error) {
	if client == nil {
		return nil, mongo.ErrClientDisconnected
	}
	return client.Database(dbName).ListCollectionNames(ctx, map[string]any{})
}

// GetCollection resuelve una colección arbitraria de la base activa.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
