package services

import (
	DB "Backend-Catequesis/src/database"
	"Backend-Catequesis/src/models"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateCatequista valida las credenciales contra la colección
// catequistas y devuelve el perfil sin el hash.
func AuthenticateCatequista(email, password string) (*models.Catequista, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cat models.Catequista
	err := DB.CatequistaCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&cat)
	if err != nil {
		return nil, errors.New("email o contraseña inválidos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cat.Password), []byte(password)); err != nil {
		return nil, errors.New("email o contraseña inválidos")
	}

	cat.Password = ""
	return &cat, nil
}

// CreateCatequista registra un operador nuevo con la contraseña hasheada.
func CreateCatequista(cat *models.Catequista, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if cat.ID.IsZero() {
		cat.ID = primitive.NewObjectID()
	}
	cat.Email = strings.ToLower(cat.Email)
	cat.Password = string(hash)

	_, err = DB.CatequistaCollection.InsertOne(ctx, cat)
	return err
}
